package dto

import "github.com/subhadipbhowmik/hirequest/internal/app/models"

// SignupRequest represents a student registration request
type SignupRequest struct {
	Name        string `json:"name" binding:"required"`
	Course      string `json:"course" binding:"required"`
	UID         string `json:"uid" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries the mutable identity fields. Absent fields
// are left unchanged.
type UpdateProfileRequest struct {
	Name        string `json:"name"`
	Course      string `json:"course"`
	PhoneNumber string `json:"phoneNumber"`
}

// TokenResponse represents bearer token information
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType" example:"Bearer"`
	ExpiresIn int64  `json:"expiresIn"`
}

// StudentResponse represents public student information
type StudentResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Course      string `json:"course"`
	UID         string `json:"uid"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

// AuthResponse represents a successful signup or login
type AuthResponse struct {
	Token   TokenResponse   `json:"token"`
	Student StudentResponse `json:"student"`
}

// NewStudentResponse maps a student model to its public representation.
// The credential hash never leaves the service layer.
func NewStudentResponse(s *models.Student) StudentResponse {
	return StudentResponse{
		ID:          s.ID,
		Name:        s.Name,
		Course:      s.Course,
		UID:         s.UID,
		PhoneNumber: s.PhoneNumber,
		Email:       s.Email,
		Role:        string(s.Role),
	}
}
