package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/subhadipbhowmik/hirequest/internal/app/models"
	"github.com/subhadipbhowmik/hirequest/internal/pkg/apperrors"
	"github.com/subhadipbhowmik/hirequest/internal/pkg/statussheet"
)

// fakeStudentStore is an in-memory StudentStore enforcing the same
// uniqueness rules as the real one.
type fakeStudentStore struct {
	students []*models.Student
	nextID   int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{nextID: 1}
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	for _, existing := range f.students {
		if existing.UID == student.UID {
			return apperrors.ErrUIDAlreadyExists
		}
		if existing.PhoneNumber == student.PhoneNumber {
			return apperrors.ErrPhoneAlreadyExists
		}
		if strings.EqualFold(existing.Email, student.Email) {
			return apperrors.ErrEmailAlreadyExists
		}
	}

	student.ID = f.nextID
	f.nextID++
	student.CreatedAt = time.Now()
	student.UpdatedAt = student.CreatedAt

	copied := *student
	f.students = append(f.students, &copied)
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	for _, s := range f.students {
		if s.ID == id {
			copied := *s
			return &copied, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range f.students {
		if strings.EqualFold(s.Email, email) {
			copied := *s
			return &copied, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) UpdateProfile(_ context.Context, id int64, name, course, phone string) (*models.Student, error) {
	for _, s := range f.students {
		if s.ID != id {
			continue
		}
		if phone != "" {
			for _, other := range f.students {
				if other.ID != id && other.PhoneNumber == phone {
					return nil, apperrors.ErrPhoneAlreadyExists
				}
			}
			s.PhoneNumber = phone
		}
		if name != "" {
			s.Name = name
		}
		if course != "" {
			s.Course = course
		}
		s.UpdatedAt = time.Now()
		copied := *s
		return &copied, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

// fakePlacementStore is an in-memory PlacementStore.
type fakePlacementStore struct {
	placements []*models.Placement
	nextID     int64
}

func newFakePlacementStore() *fakePlacementStore {
	return &fakePlacementStore{nextID: 1}
}

func (f *fakePlacementStore) Create(_ context.Context, p *models.Placement) error {
	p.ID = f.nextID
	f.nextID++
	p.CreatedAt = time.Now()

	copied := *p
	f.placements = append(f.placements, &copied)
	return nil
}

func (f *fakePlacementStore) GetAll(_ context.Context) ([]models.Placement, error) {
	out := make([]models.Placement, 0, len(f.placements))
	for _, p := range f.placements {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePlacementStore) GetByID(_ context.Context, id int64) (*models.Placement, error) {
	for _, p := range f.placements {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, apperrors.ErrPlacementNotFound
}

// fakeApplicationStore is an in-memory ApplicationStore with the compound
// uniqueness rule of the real one. Create is atomic under the mutex, the
// same guarantee the unique index gives concurrent inserts. Listing joins
// against the given placement store and returns rows newest first.
type fakeApplicationStore struct {
	mu           sync.Mutex
	applications []*models.Application
	placements   *fakePlacementStore
	nextID       int64
}

func newFakeApplicationStore(placements *fakePlacementStore) *fakeApplicationStore {
	return &fakeApplicationStore{placements: placements, nextID: 1}
}

func (f *fakeApplicationStore) Create(_ context.Context, app *models.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.applications {
		if existing.StudentID == app.StudentID && existing.PlacementID == app.PlacementID {
			return apperrors.ErrAlreadyApplied
		}
	}

	app.ID = f.nextID
	f.nextID++
	if app.AppliedAt.IsZero() {
		app.AppliedAt = time.Now()
	}

	copied := *app
	f.applications = append(f.applications, &copied)
	return nil
}

func (f *fakeApplicationStore) Exists(_ context.Context, studentID, placementID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, a := range f.applications {
		if a.StudentID == studentID && a.PlacementID == placementID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationStore) ListByStudent(ctx context.Context, studentID int64) ([]models.ApplicationView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var views []models.ApplicationView
	for _, a := range f.applications {
		if a.StudentID != studentID {
			continue
		}
		p, err := f.placements.GetByID(ctx, a.PlacementID)
		if err != nil {
			return nil, err
		}
		views = append(views, models.ApplicationView{
			ApplicationID: a.ID,
			PlacementID:   a.PlacementID,
			Company:       p.CompanyName,
			Position:      p.Position,
			DriveDate:     p.CampusDriveDate,
			AppliedAt:     a.AppliedAt,
		})
	}

	for i := 0; i < len(views); i++ {
		for j := i + 1; j < len(views); j++ {
			if views[j].AppliedAt.After(views[i].AppliedAt) {
				views[i], views[j] = views[j], views[i]
			}
		}
	}
	return views, nil
}

// fakeStatusFetcher returns a canned status map or a canned error.
type fakeStatusFetcher struct {
	statuses map[string]string
	err      error
	gotReq   statussheet.StatusRequest
}

func (f *fakeStatusFetcher) FetchStatuses(_ context.Context, req statussheet.StatusRequest) (map[string]string, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.statuses, nil
}
