package repository

import (
	"time"

	"team-capacity-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AllocationRepository handles database operations for allocations
type AllocationRepository struct {
	db *gorm.DB
}

// NewAllocationRepository creates a new allocation repository
func NewAllocationRepository(db *gorm.DB) *AllocationRepository {
	return &AllocationRepository{db: db}
}

// withProject preloads the project, including soft-deleted ones, so
// historical allocations keep their label
func withProject(db *gorm.DB) *gorm.DB {
	return db.Preload("Project", func(tx *gorm.DB) *gorm.DB {
		return tx.Unscoped()
	})
}

// Create creates a new allocation
func (r *AllocationRepository) Create(allocation *models.Allocation) error {
	return r.db.Omit("Project").Create(allocation).Error
}

// GetByID retrieves an allocation by ID
func (r *AllocationRepository) GetByID(id uuid.UUID) (*models.Allocation, error) {
	var allocation models.Allocation
	err := withProject(r.db).First(&allocation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &allocation, nil
}

// GetAll retrieves every allocation regardless of date
func (r *AllocationRepository) GetAll() ([]models.Allocation, error) {
	var allocations []models.Allocation
	err := withProject(r.db).Order("start_date ASC, id ASC").Find(&allocations).Error
	return allocations, err
}

// GetByEmployeeID retrieves all allocations for an employee
func (r *AllocationRepository) GetByEmployeeID(employeeID uuid.UUID) ([]models.Allocation, error) {
	var allocations []models.Allocation
	err := withProject(r.db).
		Where("employee_id = ?", employeeID).
		Order("start_date ASC, id ASC").
		Find(&allocations).Error
	return allocations, err
}

// FindOverlapping retrieves an employee's allocations sharing at least one day
// with [start, end]. excludeID, when set, is left out of the result.
func (r *AllocationRepository) FindOverlapping(employeeID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]models.Allocation, error) {
	var allocations []models.Allocation
	query := withProject(r.db).
		Where("employee_id = ?", employeeID).
		Where("start_date <= ? AND end_date >= ?", end, start)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	err := query.Order("start_date ASC, id ASC").Find(&allocations).Error
	return allocations, err
}

// Update updates an existing allocation
func (r *AllocationRepository) Update(allocation *models.Allocation) error {
	return r.db.Omit("Project").Save(allocation).Error
}

// Delete hard-deletes an allocation
func (r *AllocationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Allocation{}, "id = ?", id).Error
}
