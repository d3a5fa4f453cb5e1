package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/subhadipbhowmik/hirequest/internal/app/models"
	"github.com/subhadipbhowmik/hirequest/internal/app/models/dto"
	"github.com/subhadipbhowmik/hirequest/internal/pkg/apperrors"
	"github.com/subhadipbhowmik/hirequest/internal/pkg/statussheet"
)

// DefaultStatusLabel is used for applications the status sheet does not
// know about, and for every application when the sheet is unreachable.
const DefaultStatusLabel = "Pending"

// ApplicationStore is the persistence surface the application service needs
type ApplicationStore interface {
	Create(ctx context.Context, app *models.Application) error
	Exists(ctx context.Context, studentID, placementID int64) (bool, error)
	ListByStudent(ctx context.Context, studentID int64) ([]models.ApplicationView, error)
}

// PlacementReader resolves placement references during apply
type PlacementReader interface {
	GetByID(ctx context.Context, id int64) (*models.Placement, error)
}

// StatusFetcher retrieves per-company status labels for a student identity
type StatusFetcher interface {
	FetchStatuses(ctx context.Context, req statussheet.StatusRequest) (map[string]string, error)
}

// ApplicationService creates application records and assembles the merged
// application view.
type ApplicationService struct {
	applications ApplicationStore
	placements   PlacementReader
	statuses     StatusFetcher
	logger       zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	applications ApplicationStore,
	placements PlacementReader,
	statuses StatusFetcher,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		placements:   placements,
		statuses:     statuses,
		logger:       logger,
	}
}

// Apply submits an application for a placement drive. The duplicate
// pre-check is an optimization; the store's unique constraint is
// authoritative, so two concurrent submissions for the same pair produce
// exactly one record and exactly one success.
func (s *ApplicationService) Apply(ctx context.Context, student *models.Student, placementID int64) (*dto.ApplyResponse, error) {
	placement, err := s.placements.GetByID(ctx, placementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlacementNotFound) {
			return nil, apperrors.ErrPlacementNotFound
		}
		return nil, err
	}

	exists, err := s.applications.Exists(ctx, student.ID, placementID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	app := &models.Application{
		StudentID:   student.ID,
		PlacementID: placementID,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("studentID", student.ID).
		Int64("placementID", placementID).
		Str("company", placement.CompanyName).
		Msg("Application submitted")

	return &dto.ApplyResponse{
		ApplicationID: app.ID,
		Company:       placement.CompanyName,
		AppliedAt:     app.AppliedAt,
	}, nil
}

// ListMyApplications returns the student's applications, most recently
// applied first, with each status merged from the status sheet. The sheet is
// queried concurrently with the local read; a provider failure degrades
// every entry to the default label and never fails the operation.
func (s *ApplicationService) ListMyApplications(ctx context.Context, student *models.Student) ([]models.ApplicationView, error) {
	type sheetResult struct {
		statuses map[string]string
		err      error
	}

	sheetCh := make(chan sheetResult, 1)
	go func() {
		statuses, err := s.statuses.FetchStatuses(ctx, statussheet.StatusRequest{
			UID:   student.UID,
			Email: student.Email,
			Phone: student.PhoneNumber,
		})
		sheetCh <- sheetResult{statuses: statuses, err: err}
	}()

	views, err := s.applications.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	res := <-sheetCh
	if res.err != nil {
		s.logger.Warn().Err(res.err).
			Int64("studentID", student.ID).
			Msg("Status sheet unavailable, falling back to default status")
		res.statuses = nil
	}

	for i := range views {
		if status, ok := res.statuses[views[i].Company]; ok && status != "" {
			views[i].Status = status
		} else {
			views[i].Status = DefaultStatusLabel
		}
	}

	return views, nil
}
