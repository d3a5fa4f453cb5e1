package models

import "time"

// RoleType defines the role of an identity
type RoleType string

const (
	// RoleStudent is the default role assigned at signup
	RoleStudent RoleType = "STUDENT"
	// RoleCoordinator marks placement-cell staff allowed to post drives
	RoleCoordinator RoleType = "COORDINATOR"
)

// Student represents a registered student identity.
// The triple (UID, PhoneNumber, Email) is collectively and individually
// unique; each is backed by its own unique constraint.
type Student struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Course      string    `json:"course"`
	UID         string    `json:"uid"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	Role        RoleType  `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
