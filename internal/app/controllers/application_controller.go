package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/subhadipbhowmik/hirequest/internal/app/models/dto"
	"github.com/subhadipbhowmik/hirequest/internal/app/services"
	"github.com/subhadipbhowmik/hirequest/internal/middleware"
	"github.com/subhadipbhowmik/hirequest/internal/pkg/apperrors"
)

// ApplicationController handles application submission and the merged
// application listing.
type ApplicationController struct {
	applicationService *services.ApplicationService
	authService        *services.AuthService
	logger             zerolog.Logger
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(
	applicationService *services.ApplicationService,
	authService *services.AuthService,
	logger zerolog.Logger,
) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
		authService:        authService,
		logger:             logger,
	}
}

// Apply submits an application to a placement drive
// @Summary Apply to a placement drive
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param placementId path int true "Placement ID"
// @Success 201 {object} dto.APIResponse{data=dto.ApplyResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthenticated"
// @Failure 404 {object} dto.ErrorResponse "Placement not found"
// @Failure 409 {object} dto.ErrorResponse "Already applied"
// @Router /applications/{placementId} [post]
func (c *ApplicationController) Apply(ctx *gin.Context) {
	student, ok := resolveStudent(ctx, c.authService)
	if !ok {
		return
	}

	placementID, err := strconv.ParseInt(ctx.Param("placementId"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrPlacementNotFound)
		return
	}

	applied, err := c.applicationService.Apply(ctx.Request.Context(), student, placementID)
	if err != nil {
		c.logger.Warn().Err(err).
			Int64("studentID", student.ID).
			Int64("placementID", placementID).
			Msg("Apply failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(applied))
}

// GetMyApplications returns the student's applications with merged statuses
// @Summary List my applications
// @Description Applications most-recently-applied-first with status merged
// @Description from the placement status sheet; unmatched entries are Pending.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.ApplicationView}
// @Failure 401 {object} dto.ErrorResponse "Unauthenticated"
// @Router /students/profile [get]
func (c *ApplicationController) GetMyApplications(ctx *gin.Context) {
	student, ok := resolveStudent(ctx, c.authService)
	if !ok {
		return
	}

	views, err := c.applicationService.ListMyApplications(ctx.Request.Context(), student)
	if err != nil {
		c.logger.Error().Err(err).Int64("studentID", student.ID).Msg("Failed to list applications")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(views))
}
