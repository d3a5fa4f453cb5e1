package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subhadipbhowmik/hirequest/internal/app/models"
	"github.com/subhadipbhowmik/hirequest/internal/app/models/dto"
	"github.com/subhadipbhowmik/hirequest/internal/pkg/apperrors"
	"github.com/subhadipbhowmik/hirequest/internal/pkg/auth"
)

func newTestAuthService(store StudentStore) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    time.Hour,
		TokenIssuer: "hirequest.test",
	})
	return NewAuthService(store, jwtService, zerolog.Nop())
}

func validSignup() *dto.SignupRequest {
	return &dto.SignupRequest{
		Name:        "Asha Verma",
		Course:      "BE-CSE",
		UID:         "21BCS-1001",
		PhoneNumber: "9876543210",
		Email:       "asha.verma@cuchd.in",
		Password:    "Secret123",
	}
}

func TestRegisterStudent(t *testing.T) {
	store := newFakeStudentStore()
	svc := newTestAuthService(store)

	resp, err := svc.RegisterStudent(context.Background(), validSignup())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token.Token)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, int64(1), resp.Student.ID)
	assert.Equal(t, "asha.verma@cuchd.in", resp.Student.Email)
	assert.Equal(t, string(models.RoleStudent), resp.Student.Role)

	stored, err := store.GetByID(context.Background(), resp.Student.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "Secret123"))
}

func TestRegisterStudent_LowercasesEmail(t *testing.T) {
	store := newFakeStudentStore()
	svc := newTestAuthService(store)

	req := validSignup()
	req.Email = "Asha.Verma@CUCHD.in"

	resp, err := svc.RegisterStudent(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "asha.verma@cuchd.in", resp.Student.Email)
}

func TestRegisterStudent_Duplicates(t *testing.T) {
	store := newFakeStudentStore()
	svc := newTestAuthService(store)

	_, err := svc.RegisterStudent(context.Background(), validSignup())
	require.NoError(t, err)

	t.Run("same uid", func(t *testing.T) {
		req := validSignup()
		req.PhoneNumber = "9876543211"
		req.Email = "other@cuchd.in"
		_, err := svc.RegisterStudent(context.Background(), req)
		assert.ErrorIs(t, err, apperrors.ErrUIDAlreadyExists)
	})

	t.Run("same phone", func(t *testing.T) {
		req := validSignup()
		req.UID = "21BCS-1002"
		req.Email = "other@cuchd.in"
		_, err := svc.RegisterStudent(context.Background(), req)
		assert.ErrorIs(t, err, apperrors.ErrPhoneAlreadyExists)
	})

	t.Run("same email different case", func(t *testing.T) {
		req := validSignup()
		req.UID = "21BCS-1002"
		req.PhoneNumber = "9876543211"
		req.Email = "ASHA.VERMA@cuchd.in"
		_, err := svc.RegisterStudent(context.Background(), req)
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})
}

func TestRegisterStudent_Validation(t *testing.T) {
	svc := newTestAuthService(newFakeStudentStore())

	tests := []struct {
		name   string
		mutate func(*dto.SignupRequest)
		field  string
	}{
		{"empty name", func(r *dto.SignupRequest) { r.Name = "  " }, "name"},
		{"empty course", func(r *dto.SignupRequest) { r.Course = "" }, "course"},
		{"empty uid", func(r *dto.SignupRequest) { r.UID = "" }, "uid"},
		{"uid with spaces", func(r *dto.SignupRequest) { r.UID = "21 BCS" }, "uid"},
		{"short phone", func(r *dto.SignupRequest) { r.PhoneNumber = "98765" }, "phoneNumber"},
		{"phone with letters", func(r *dto.SignupRequest) { r.PhoneNumber = "98765abcde" }, "phoneNumber"},
		{"bad email", func(r *dto.SignupRequest) { r.Email = "not-an-email" }, "email"},
		{"short password", func(r *dto.SignupRequest) { r.Password = "Ab1" }, "password"},
		{"password without digit", func(r *dto.SignupRequest) { r.Password = "Secretpass" }, "password"},
		{"password without upper", func(r *dto.SignupRequest) { r.Password = "secret123" }, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignup()
			tt.mutate(req)

			_, err := svc.RegisterStudent(context.Background(), req)
			require.Error(t, err)

			var customErr *apperrors.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			assert.Equal(t, tt.field, customErr.Field)
		})
	}
}

func TestLogin(t *testing.T) {
	store := newFakeStudentStore()
	svc := newTestAuthService(store)

	_, err := svc.RegisterStudent(context.Background(), validSignup())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "asha.verma@cuchd.in",
		Password: "Secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token.Token)
	assert.Equal(t, int64(1), resp.Student.ID)
}

func TestLogin_FailureIsUniform(t *testing.T) {
	store := newFakeStudentStore()
	svc := newTestAuthService(store)

	_, err := svc.RegisterStudent(context.Background(), validSignup())
	require.NoError(t, err)

	// An unknown account and a wrong password must be indistinguishable.
	_, unknownErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@cuchd.in",
		Password: "Secret123",
	})
	_, wrongPassErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "asha.verma@cuchd.in",
		Password: "WrongPass1",
	})

	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
}

func TestLogin_EmptyPassword(t *testing.T) {
	svc := newTestAuthService(newFakeStudentStore())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "asha.verma@cuchd.in",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	store := newFakeStudentStore()
	svc := newTestAuthService(store)

	resp, err := svc.RegisterStudent(context.Background(), validSignup())
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), resp.Student.ID, &dto.UpdateProfileRequest{
		Name:        "Asha V.",
		PhoneNumber: "9123456780",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha V.", updated.Name)
	assert.Equal(t, "9123456780", updated.PhoneNumber)
	// untouched field survives
	assert.Equal(t, "BE-CSE", updated.Course)
}

func TestUpdateProfile_NoFields(t *testing.T) {
	svc := newTestAuthService(newFakeStudentStore())

	_, err := svc.UpdateProfile(context.Background(), 1, &dto.UpdateProfileRequest{})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateProfile_InvalidPhone(t *testing.T) {
	svc := newTestAuthService(newFakeStudentStore())

	_, err := svc.UpdateProfile(context.Background(), 1, &dto.UpdateProfileRequest{
		PhoneNumber: "12345",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
