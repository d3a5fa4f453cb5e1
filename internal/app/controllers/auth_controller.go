// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/subhadipbhowmik/hirequest/internal/app/models"
	"github.com/subhadipbhowmik/hirequest/internal/app/models/dto"
	"github.com/subhadipbhowmik/hirequest/internal/app/services"
	"github.com/subhadipbhowmik/hirequest/internal/middleware"
	"github.com/subhadipbhowmik/hirequest/internal/pkg/apperrors"
)

// AuthController handles signup, login and profile operations
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Signup handles student registration
// @Summary Register a new student
// @Description Creates a student account and returns a bearer token
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Student registration information"
// @Success 201 {object} dto.APIResponse{data=dto.AuthResponse} "Student registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 409 {object} dto.ErrorResponse "UID, phone number or email already registered"
// @Router /students/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid signup request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	authResponse, err := c.authService.RegisterStudent(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("uid", req.UID).Msg("Signup failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(authResponse))
}

// Login handles student login
// @Summary Student login
// @Description Authenticates a student and returns a bearer token
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /students/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	authResponse, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(authResponse))
}

// GetCurrentStudent returns the authenticated student's identity
// @Summary Current student
// @Description Returns the identity resolved from the bearer token
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthenticated"
// @Router /students/me [get]
func (c *AuthController) GetCurrentStudent(ctx *gin.Context) {
	student, ok := resolveStudent(ctx, c.authService)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewStudentResponse(student)))
}

// UpdateProfile updates the mutable identity fields
// @Summary Update profile
// @Description Updates name, course and/or phone number
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthenticated"
// @Failure 409 {object} dto.ErrorResponse "Phone number already registered"
// @Router /students/profile [put]
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	student, ok := resolveStudent(ctx, c.authService)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	updated, err := c.authService.UpdateProfile(ctx.Request.Context(), student.ID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("studentID", student.ID).Msg("Profile update failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewStudentResponse(updated)))
}

// resolveStudent loads the full identity for the token's student ID. A token
// referencing a deleted account is reported as Unauthenticated.
func resolveStudent(ctx *gin.Context, authService *services.AuthService) (*models.Student, bool) {
	studentID, ok := middleware.StudentIDFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return nil, false
	}

	student, err := authService.GetStudentByID(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return nil, false
	}

	return student, true
}
