package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/subhadipbhowmik/hirequest/internal/app/models"
	"github.com/subhadipbhowmik/hirequest/internal/pkg/apperrors"
	"github.com/subhadipbhowmik/hirequest/internal/pkg/dberrors"
	"github.com/subhadipbhowmik/hirequest/internal/pkg/logger"
)

// StudentRepository handles student identity database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new student. Duplicate uid/phone/email detection relies on
// the unique constraints, not on a prior read, so it holds under concurrent
// signups.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO students (name, course, uid, phone_number, email, password, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		student.Name, student.Course, student.UID, student.PhoneNumber,
		strings.ToLower(student.Email), student.Password, student.Role).
		Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "students_uid_key"):
			logger.Warn().Str("uid", student.UID).Msg("Attempted signup with duplicate UID")
			return apperrors.ErrUIDAlreadyExists
		case dberrors.IsDuplicateConstraintError(err, "students_phone_number_key"):
			logger.Warn().Msg("Attempted signup with duplicate phone number")
			return apperrors.ErrPhoneAlreadyExists
		case dberrors.IsDuplicateConstraintError(err, "students_email_key"):
			logger.Warn().Str("email", student.Email).Msg("Attempted signup with duplicate email")
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	student.Email = strings.ToLower(student.Email)
	return nil
}

const studentColumns = "id, name, course, uid, phone_number, email, password, role, created_at, updated_at"

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(&s.ID, &s.Name, &s.Course, &s.UID, &s.PhoneNumber,
		&s.Email, &s.Password, &s.Role, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return &s, nil
}

// GetByID retrieves a student by durable ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id)
	return scanStudent(row)
}

// GetByEmail retrieves a student by email, case-insensitively
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE lower(email) = lower($1)`, email)
	return scanStudent(row)
}

// UpdateProfile updates the mutable identity fields. Empty values leave the
// corresponding column unchanged.
func (r *StudentRepository) UpdateProfile(ctx context.Context, id int64, name, course, phone string) (*models.Student, error) {
	update := r.sb.Update("students").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + studentColumns)

	if name != "" {
		update = update.Set("name", name)
	}
	if course != "" {
		update = update.Set("course", course)
	}
	if phone != "" {
		update = update.Set("phone_number", phone)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update profile SQL")
		return nil, fmt.Errorf("failed to build update profile query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_phone_number_key") {
			return nil, apperrors.ErrPhoneAlreadyExists
		}
		return nil, err
	}

	return student, nil
}
