package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/subhadipbhowmik/hirequest/internal/app/models"
	"github.com/subhadipbhowmik/hirequest/internal/pkg/apperrors"
	"github.com/subhadipbhowmik/hirequest/internal/pkg/dberrors"
	"github.com/subhadipbhowmik/hirequest/internal/pkg/logger"
)

// ApplicationRepository handles application record database operations
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new application record. The unique constraint on
// (student_id, placement_id) is the source of truth for duplicate
// detection; concurrent duplicate submissions resolve to exactly one row.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO applications (student_id, placement_id)
		VALUES ($1, $2)
		RETURNING id, applied_at`,
		app.StudentID, app.PlacementID).
		Scan(&app.ID, &app.AppliedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "applications_student_placement_key") {
			logger.Warn().
				Int64("studentID", app.StudentID).
				Int64("placementID", app.PlacementID).
				Msg("Duplicate application rejected by constraint")
			return apperrors.ErrAlreadyApplied
		}
		logger.Error().Err(err).
			Int64("studentID", app.StudentID).
			Int64("placementID", app.PlacementID).
			Msg("Error executing create application query")
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// Exists checks if an application already exists for a (student, placement)
// pair. Callers use this as an optimization only; Create remains authoritative.
func (r *ApplicationRepository) Exists(ctx context.Context, studentID, placementID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM applications
			WHERE student_id = $1 AND placement_id = $2
		)`, studentID, placementID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking application existence: %w", err)
	}
	return exists, nil
}

// ListByStudent retrieves a student's applications resolved against their
// placements, most recently applied first. Status is left empty; the
// application service fills it from the status sheet.
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.ApplicationView, error) {
	sql, args, err := r.sb.Select(
		"a.id", "a.placement_id", "p.company_name", "p.position",
		"p.campus_drive_date", "a.applied_at",
	).
		From("applications a").
		Join("placements p ON a.placement_id = p.id").
		Where(squirrel.Eq{"a.student_id": studentID}).
		OrderBy("a.applied_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	views := make([]models.ApplicationView, 0)
	for rows.Next() {
		var v models.ApplicationView
		if err := rows.Scan(&v.ApplicationID, &v.PlacementID, &v.Company,
			&v.Position, &v.DriveDate, &v.AppliedAt); err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applications: %w", err)
	}

	return views, nil
}
