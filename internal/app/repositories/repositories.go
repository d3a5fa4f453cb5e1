package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all data access components
type Repositories struct {
	StudentRepository     *StudentRepository
	PlacementRepository   *PlacementRepository
	ApplicationRepository *ApplicationRepository
}

// NewRepositories creates all repositories over a shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:     NewStudentRepository(db),
		PlacementRepository:   NewPlacementRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
	}
}
