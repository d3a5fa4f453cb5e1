package dto

import (
	"time"

	"github.com/subhadipbhowmik/hirequest/internal/app/models"
)

// SalaryRequest mirrors models.Salary for placement creation
type SalaryRequest struct {
	CTC      string  `json:"ctc" binding:"required"`
	Variable float64 `json:"variable"`
}

// InternshipStipendRequest mirrors models.InternshipStipend
type InternshipStipendRequest struct {
	Amount float64 `json:"amount"`
}

// PayPackageRequest groups compensation fields of a placement request
type PayPackageRequest struct {
	InternshipStipend InternshipStipendRequest `json:"internshipStipend"`
	Salary            SalaryRequest            `json:"salary" binding:"required"`
}

// CreatePlacementRequest represents a coordinator posting a new drive
type CreatePlacementRequest struct {
	CompanyName         string            `json:"companyName" binding:"required"`
	CompanyDescription  string            `json:"companyDescription"`
	DriveType           string            `json:"driveType" binding:"required,oneof=In-Person Virtual Hybrid"`
	CampusDriveDate     time.Time         `json:"campusDriveDate" binding:"required"`
	CompanyWebsite      string            `json:"companyWebsite" binding:"required,url"`
	StreamRequired      []string          `json:"streamRequired" binding:"required,min=1"`
	EligibilityCriteria []string          `json:"eligibilityCriteria" binding:"required,min=1"`
	Batch               int               `json:"batch" binding:"required"`
	Position            string            `json:"position" binding:"required"`
	JobProfile          string            `json:"jobProfile"`
	JobLocation         string            `json:"jobLocation" binding:"required"`
	DateOfJoining       *time.Time        `json:"dateOfJoining"`
	PayPackage          PayPackageRequest `json:"payPackage" binding:"required"`
	AnyBond             string            `json:"anyBond"`
	PlacementProcess    []string          `json:"placementProcess" binding:"required,min=1"`
}

// ToModel converts the request to a placement model
func (r *CreatePlacementRequest) ToModel() *models.Placement {
	return &models.Placement{
		CompanyName:         r.CompanyName,
		CompanyDescription:  r.CompanyDescription,
		DriveType:           models.DriveType(r.DriveType),
		CampusDriveDate:     r.CampusDriveDate,
		CompanyWebsite:      r.CompanyWebsite,
		StreamRequired:      r.StreamRequired,
		EligibilityCriteria: r.EligibilityCriteria,
		Batch:               r.Batch,
		Position:            r.Position,
		JobProfile:          r.JobProfile,
		JobLocation:         r.JobLocation,
		DateOfJoining:       r.DateOfJoining,
		PayPackage: models.PayPackage{
			InternshipStipend: models.InternshipStipend{Amount: r.PayPackage.InternshipStipend.Amount},
			Salary:            models.Salary{CTC: r.PayPackage.Salary.CTC, Variable: r.PayPackage.Salary.Variable},
		},
		AnyBond:          r.AnyBond,
		PlacementProcess: r.PlacementProcess,
	}
}

// PlacementListResponse wraps the placement directory listing
type PlacementListResponse struct {
	Count      int                `json:"count"`
	Placements []models.Placement `json:"placements"`
}
