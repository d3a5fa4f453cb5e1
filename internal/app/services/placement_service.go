package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/subhadipbhowmik/hirequest/internal/app/models"
	"github.com/subhadipbhowmik/hirequest/internal/app/models/dto"
	"github.com/subhadipbhowmik/hirequest/internal/pkg/apperrors"
)

// PlacementStore is the persistence surface the placement service needs
type PlacementStore interface {
	Create(ctx context.Context, p *models.Placement) error
	GetAll(ctx context.Context) ([]models.Placement, error)
	GetByID(ctx context.Context, id int64) (*models.Placement, error)
}

// PlacementService handles the placement directory
type PlacementService struct {
	placements PlacementStore
	logger     zerolog.Logger
}

// NewPlacementService creates a new PlacementService
func NewPlacementService(placements PlacementStore, logger zerolog.Logger) *PlacementService {
	return &PlacementService{
		placements: placements,
		logger:     logger,
	}
}

// validatePlacement checks the structural fields of a new posting, naming
// the first missing field.
func (s *PlacementService) validatePlacement(req *dto.CreatePlacementRequest) error {
	switch {
	case strings.TrimSpace(req.CompanyName) == "":
		return apperrors.NewValidationError("companyName", "company name is required")
	case !models.ValidDriveType(models.DriveType(req.DriveType)):
		return apperrors.NewValidationError("driveType", "drive type must be In-Person, Virtual or Hybrid")
	case req.CampusDriveDate.IsZero():
		return apperrors.NewValidationError("campusDriveDate", "campus drive date is required")
	case strings.TrimSpace(req.CompanyWebsite) == "":
		return apperrors.NewValidationError("companyWebsite", "company website is required")
	case len(req.StreamRequired) == 0:
		return apperrors.NewValidationError("streamRequired", "at least one eligible stream is required")
	case len(req.EligibilityCriteria) == 0:
		return apperrors.NewValidationError("eligibilityCriteria", "at least one eligibility criterion is required")
	case req.Batch == 0:
		return apperrors.NewValidationError("batch", "eligible batch is required")
	case strings.TrimSpace(req.Position) == "":
		return apperrors.NewValidationError("position", "position is required")
	case strings.TrimSpace(req.JobLocation) == "":
		return apperrors.NewValidationError("jobLocation", "job location is required")
	case strings.TrimSpace(req.PayPackage.Salary.CTC) == "":
		return apperrors.NewValidationError("payPackage.salary.ctc", "salary CTC is required")
	case len(req.PlacementProcess) == 0:
		return apperrors.NewValidationError("placementProcess", "at least one hiring-process step is required")
	}
	return nil
}

// Create stores a new placement drive posting. Postings are immutable once
// created.
func (s *PlacementService) Create(ctx context.Context, req *dto.CreatePlacementRequest) (*models.Placement, error) {
	if err := s.validatePlacement(req); err != nil {
		return nil, err
	}

	placement := req.ToModel()
	if err := s.placements.Create(ctx, placement); err != nil {
		return nil, err
	}

	return placement, nil
}

// GetAll lists the placement directory, ordered by drive date ascending
func (s *PlacementService) GetAll(ctx context.Context) (*dto.PlacementListResponse, error) {
	placements, err := s.placements.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.PlacementListResponse{
		Count:      len(placements),
		Placements: placements,
	}, nil
}

// GetByID retrieves one placement, failing with PlacementNotFound for
// unknown identifiers.
func (s *PlacementService) GetByID(ctx context.Context, id int64) (*models.Placement, error) {
	return s.placements.GetByID(ctx, id)
}
