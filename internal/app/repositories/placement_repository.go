package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/subhadipbhowmik/hirequest/internal/app/models"
	"github.com/subhadipbhowmik/hirequest/internal/pkg/apperrors"
	"github.com/subhadipbhowmik/hirequest/internal/pkg/logger"
)

// PlacementRepository handles placement drive database operations
type PlacementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPlacementRepository creates a new PlacementRepository
func NewPlacementRepository(db *pgxpool.Pool) *PlacementRepository {
	return &PlacementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var placementColumns = []string{
	"id", "company_name", "company_description", "drive_type", "campus_drive_date",
	"company_website", "stream_required", "eligibility_criteria", "batch",
	"position", "job_profile", "job_location", "date_of_joining",
	"salary_ctc", "salary_variable", "internship_stipend", "any_bond",
	"placement_process", "created_at", "updated_at",
}

func scanPlacement(row pgx.Row) (*models.Placement, error) {
	var p models.Placement
	err := row.Scan(
		&p.ID, &p.CompanyName, &p.CompanyDescription, &p.DriveType, &p.CampusDriveDate,
		&p.CompanyWebsite, &p.StreamRequired, &p.EligibilityCriteria, &p.Batch,
		&p.Position, &p.JobProfile, &p.JobLocation, &p.DateOfJoining,
		&p.PayPackage.Salary.CTC, &p.PayPackage.Salary.Variable,
		&p.PayPackage.InternshipStipend.Amount, &p.AnyBond,
		&p.PlacementProcess, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPlacementNotFound
		}
		return nil, fmt.Errorf("error retrieving placement: %w", err)
	}
	return &p, nil
}

// Create inserts a new placement drive posting
func (r *PlacementRepository) Create(ctx context.Context, p *models.Placement) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO placements (
			company_name, company_description, drive_type, campus_drive_date,
			company_website, stream_required, eligibility_criteria, batch,
			position, job_profile, job_location, date_of_joining,
			salary_ctc, salary_variable, internship_stipend, any_bond, placement_process
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at, updated_at`,
		p.CompanyName, p.CompanyDescription, p.DriveType, p.CampusDriveDate,
		p.CompanyWebsite, p.StreamRequired, p.EligibilityCriteria, p.Batch,
		p.Position, p.JobProfile, p.JobLocation, p.DateOfJoining,
		p.PayPackage.Salary.CTC, p.PayPackage.Salary.Variable,
		p.PayPackage.InternshipStipend.Amount, p.AnyBond, p.PlacementProcess).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		logger.Error().Err(err).Str("company", p.CompanyName).Msg("Error executing create placement query")
		return fmt.Errorf("error creating placement: %w", err)
	}

	logger.Info().Int64("placementID", p.ID).Str("company", p.CompanyName).Msg("Placement created")
	return nil
}

// GetAll retrieves all placements ordered by drive date ascending, so
// upcoming drives surface first.
func (r *PlacementRepository) GetAll(ctx context.Context) ([]models.Placement, error) {
	sql, args, err := r.sb.Select(placementColumns...).
		From("placements").
		OrderBy("campus_drive_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list placements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing placements: %w", err)
	}
	defer rows.Close()

	placements := make([]models.Placement, 0)
	for rows.Next() {
		p, err := scanPlacement(rows)
		if err != nil {
			return nil, err
		}
		placements = append(placements, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating placements: %w", err)
	}

	return placements, nil
}

// GetByID retrieves a placement by ID
func (r *PlacementRepository) GetByID(ctx context.Context, id int64) (*models.Placement, error) {
	sql, args, err := r.sb.Select(placementColumns...).
		From("placements").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get placement query: %w", err)
	}

	return scanPlacement(r.db.QueryRow(ctx, sql, args...))
}
