package models

import "time"

// Application links one student to one placement drive. AppliedAt is
// immutable once set. At most one record exists per (student, placement)
// pair, enforced by a unique constraint in the store.
type Application struct {
	ID          int64     `json:"id"`
	StudentID   int64     `json:"studentId"`
	PlacementID int64     `json:"placementId"`
	AppliedAt   time.Time `json:"appliedAt"`
}

// ApplicationView is the merged, display-ready form of an application:
// the local record joined with the status-sheet label for the company.
// It is derived per request and never stored.
type ApplicationView struct {
	ApplicationID int64     `json:"applicationId"`
	PlacementID   int64     `json:"placementId"`
	Company       string    `json:"company"`
	Position      string    `json:"position"`
	DriveDate     time.Time `json:"driveDate"`
	AppliedAt     time.Time `json:"appliedAt"`
	Status        string    `json:"status"`
}
