package models

import "time"

// DriveType is the delivery mode of a campus drive
type DriveType string

const (
	DriveInPerson DriveType = "In-Person"
	DriveVirtual  DriveType = "Virtual"
	DriveHybrid   DriveType = "Hybrid"
)

// ValidDriveType reports whether t is one of the recognized drive modes
func ValidDriveType(t DriveType) bool {
	switch t {
	case DriveInPerson, DriveVirtual, DriveHybrid:
		return true
	}
	return false
}

// Salary is the headline compensation for a placement
type Salary struct {
	CTC      string  `json:"ctc"`
	Variable float64 `json:"variable"`
}

// InternshipStipend is the optional internship component of a pay package
type InternshipStipend struct {
	Amount float64 `json:"amount"`
}

// PayPackage groups the compensation terms of a placement.
// Salary.CTC is always present when a pay package is present.
type PayPackage struct {
	InternshipStipend InternshipStipend `json:"internshipStipend"`
	Salary            Salary            `json:"salary"`
}

// Placement represents a placement-drive posting. Postings are immutable
// once created.
type Placement struct {
	ID                  int64      `json:"id"`
	CompanyName         string     `json:"companyName"`
	CompanyDescription  string     `json:"companyDescription"`
	DriveType           DriveType  `json:"driveType"`
	CampusDriveDate     time.Time  `json:"campusDriveDate"`
	CompanyWebsite      string     `json:"companyWebsite"`
	StreamRequired      []string   `json:"streamRequired"`
	EligibilityCriteria []string   `json:"eligibilityCriteria"`
	Batch               int        `json:"batch"`
	Position            string     `json:"position"`
	JobProfile          string     `json:"jobProfile"`
	JobLocation         string     `json:"jobLocation"`
	DateOfJoining       *time.Time `json:"dateOfJoining,omitempty"`
	PayPackage          PayPackage `json:"payPackage"`
	AnyBond             string     `json:"anyBond,omitempty"`
	PlacementProcess    []string   `json:"placementProcess"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}
