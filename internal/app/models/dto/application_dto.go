package dto

import "time"

// ApplyResponse represents a successfully submitted application
type ApplyResponse struct {
	ApplicationID int64     `json:"applicationId"`
	Company       string    `json:"company"`
	AppliedAt     time.Time `json:"appliedAt"`
}
