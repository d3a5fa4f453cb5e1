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

// PlacementController handles the placement directory endpoints
type PlacementController struct {
	placementService *services.PlacementService
	logger           zerolog.Logger
}

// NewPlacementController creates a new PlacementController
func NewPlacementController(placementService *services.PlacementService, logger zerolog.Logger) *PlacementController {
	return &PlacementController{
		placementService: placementService,
		logger:           logger,
	}
}

// Create handles posting a new placement drive
// @Summary Post a placement drive
// @Description Creates a placement posting. Requires a coordinator identity.
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePlacementRequest true "Placement drive"
// @Success 201 {object} dto.APIResponse{data=models.Placement}
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed field"
// @Failure 401 {object} dto.ErrorResponse "Unauthenticated"
// @Failure 403 {object} dto.ErrorResponse "Not a coordinator"
// @Router /placements [post]
func (c *PlacementController) Create(ctx *gin.Context) {
	var req dto.CreatePlacementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid placement payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	placement, err := c.placementService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(placement))
}

// GetAll lists all placement drives
// @Summary List placement drives
// @Description Lists all postings ordered by drive date ascending
// @Tags placements
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.PlacementListResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /placements [get]
func (c *PlacementController) GetAll(ctx *gin.Context) {
	listing, err := c.placementService.GetAll(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list placements")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(listing))
}

// GetByID retrieves one placement drive
// @Summary Get a placement drive
// @Tags placements
// @Produce json
// @Param id path int true "Placement ID"
// @Success 200 {object} dto.APIResponse{data=models.Placement}
// @Failure 404 {object} dto.ErrorResponse "Placement not found"
// @Router /placements/{id} [get]
func (c *PlacementController) GetByID(ctx *gin.Context) {
	// Malformed identifiers are indistinguishable from unknown ones.
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrPlacementNotFound)
		return
	}

	placement, err := c.placementService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(placement))
}
