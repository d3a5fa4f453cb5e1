package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/subhadipbhowmik/hirequest/internal/app/models"
	"github.com/subhadipbhowmik/hirequest/internal/app/models/dto"
	"github.com/subhadipbhowmik/hirequest/internal/pkg/apperrors"
	"github.com/subhadipbhowmik/hirequest/internal/pkg/auth"
)

var (
	emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	uidRegex   = regexp.MustCompile(`^[A-Za-z0-9\-]+$`)
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
)

// StudentStore is the identity persistence surface the auth service needs
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	UpdateProfile(ctx context.Context, id int64, name, course, phone string) (*models.Student, error)
}

// AuthService handles registration, login and identity resolution
type AuthService struct {
	students   StudentStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(students StudentStore, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		students:   students,
		jwtService: jwtService,
		logger:     logger,
	}
}

// validateEmail validates an email address
func (s *AuthService) validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.NewValidationError("email", "email cannot be empty")
	}

	if !emailRegex.MatchString(strings.ToLower(email)) {
		return apperrors.NewValidationError("email", apperrors.ErrInvalidEmail.Error())
	}

	return nil
}

// validatePassword checks if a password meets the policy: at least 8
// characters with an upper-case letter, a lower-case letter and a digit.
func (s *AuthService) validatePassword(password string) error {
	if len(password) < 8 {
		return apperrors.NewValidationError("password", "password must be at least 8 characters long")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}

	if !hasUpper || !hasLower {
		return apperrors.NewValidationError("password", "password must contain upper and lower case letters")
	}
	if !hasDigit {
		return apperrors.NewValidationError("password", "password must contain at least one digit")
	}

	return nil
}

// validateUID validates an institutional UID (alphanumeric plus hyphen)
func (s *AuthService) validateUID(uid string) error {
	if uid == "" {
		return apperrors.NewValidationError("uid", "uid cannot be empty")
	}
	if !uidRegex.MatchString(uid) {
		return apperrors.NewValidationError("uid", apperrors.ErrInvalidUID.Error())
	}
	return nil
}

// validatePhone validates a 10-digit phone number
func (s *AuthService) validatePhone(phone string) error {
	if !phoneRegex.MatchString(phone) {
		return apperrors.NewValidationError("phoneNumber", apperrors.ErrInvalidPhone.Error())
	}
	return nil
}

// RegisterStudent registers a new student identity and mints a bearer token.
// Identity creation is the only durable write on this path; token minting is
// pure signing.
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("name", "name cannot be empty")
	}
	if strings.TrimSpace(req.Course) == "" {
		return nil, apperrors.NewValidationError("course", "course cannot be empty")
	}
	if err := s.validateUID(req.UID); err != nil {
		return nil, err
	}
	if err := s.validatePhone(req.PhoneNumber); err != nil {
		return nil, err
	}
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		Name:        req.Name,
		Course:      req.Course,
		UID:         req.UID,
		PhoneNumber: req.PhoneNumber,
		Email:       strings.ToLower(req.Email),
		Password:    hashedPassword,
		Role:        models.RoleStudent,
	}

	// Uniqueness of uid/phone/email is enforced by the store's constraints,
	// not by a read-then-write, so concurrent signups cannot race past it.
	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("studentID", student.ID).
		Str("uid", student.UID).
		Msg("Student registered")

	return s.buildAuthResponse(student)
}

// Login authenticates a student. The failure is identical for an unknown
// email and a wrong password so callers cannot probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := s.validateEmail(req.Email); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	student, err := s.students.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Int64("studentID", student.ID).Msg("Student logged in")

	return s.buildAuthResponse(student)
}

// GetStudentByID resolves a durable identifier to its current identity.
// Runs on every protected request; read-only.
func (s *AuthService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// UpdateProfile updates the mutable identity fields (name, course, phone)
func (s *AuthService) UpdateProfile(ctx context.Context, id int64, req *dto.UpdateProfileRequest) (*models.Student, error) {
	if req.Name == "" && req.Course == "" && req.PhoneNumber == "" {
		return nil, apperrors.NewValidationError("", "no profile fields to update")
	}

	if req.PhoneNumber != "" {
		if err := s.validatePhone(req.PhoneNumber); err != nil {
			return nil, err
		}
	}

	return s.students.UpdateProfile(ctx, id, req.Name, req.Course, req.PhoneNumber)
}

func (s *AuthService) buildAuthResponse(student *models.Student) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(student)
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			Token:     token,
			TokenType: "Bearer",
			ExpiresIn: expiresIn,
		},
		Student: dto.NewStudentResponse(student),
	}, nil
}
