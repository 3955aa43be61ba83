package repository

import (
	"context"
	"time"

	"team-capacity-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uuid.UUID) (*models.Employee, error)
	GetAll() ([]models.Employee, error)
	GetVisible() ([]models.Employee, error)
	Update(employee *models.Employee) error
	Delete(id uuid.UUID) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetAll() ([]models.Project, error)
	GetVisible() ([]models.Project, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

// AllocationRepositoryInterface defines the interface for allocation repository operations
type AllocationRepositoryInterface interface {
	Create(allocation *models.Allocation) error
	GetByID(id uuid.UUID) (*models.Allocation, error)
	GetAll() ([]models.Allocation, error)
	GetByEmployeeID(employeeID uuid.UUID) ([]models.Allocation, error)
	FindOverlapping(employeeID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]models.Allocation, error)
	Update(allocation *models.Allocation) error
	Delete(id uuid.UUID) error
}

// AnnualLeaveRepositoryInterface defines the interface for annual leave repository operations
type AnnualLeaveRepositoryInterface interface {
	Create(leave *models.AnnualLeave) error
	GetByID(id uuid.UUID) (*models.AnnualLeave, error)
	GetAll() ([]models.AnnualLeave, error)
	GetByEmployeeID(employeeID uuid.UUID) ([]models.AnnualLeave, error)
	FindOverlapping(employeeID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]models.AnnualLeave, error)
	Update(leave *models.AnnualLeave) error
	Delete(id uuid.UUID) error
}

// CalendarMarkerRepositoryInterface defines the interface for calendar marker repository operations
type CalendarMarkerRepositoryInterface interface {
	Create(marker *models.CalendarMarker) error
	GetByID(id uuid.UUID) (*models.CalendarMarker, error)
	GetInRange(start, end time.Time) ([]models.CalendarMarker, error)
	Update(marker *models.CalendarMarker) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// StoreInterface runs reads against a consistent snapshot
type StoreInterface interface {
	ReadSnapshot(ctx context.Context, fn func(repos *Repositories) error) error
}
