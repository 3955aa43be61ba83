package repository

import (
	"time"

	"team-capacity-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnnualLeaveRepository handles database operations for annual leave
type AnnualLeaveRepository struct {
	db *gorm.DB
}

// NewAnnualLeaveRepository creates a new annual leave repository
func NewAnnualLeaveRepository(db *gorm.DB) *AnnualLeaveRepository {
	return &AnnualLeaveRepository{db: db}
}

// Create creates a new leave record
func (r *AnnualLeaveRepository) Create(leave *models.AnnualLeave) error {
	return r.db.Create(leave).Error
}

// GetByID retrieves a leave record by ID
func (r *AnnualLeaveRepository) GetByID(id uuid.UUID) (*models.AnnualLeave, error) {
	var leave models.AnnualLeave
	err := r.db.First(&leave, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

// GetAll retrieves every leave record regardless of date
func (r *AnnualLeaveRepository) GetAll() ([]models.AnnualLeave, error) {
	var leave []models.AnnualLeave
	err := r.db.Order("start_date ASC, id ASC").Find(&leave).Error
	return leave, err
}

// GetByEmployeeID retrieves all leave for an employee
func (r *AnnualLeaveRepository) GetByEmployeeID(employeeID uuid.UUID) ([]models.AnnualLeave, error) {
	var leave []models.AnnualLeave
	err := r.db.Where("employee_id = ?", employeeID).Order("start_date ASC, id ASC").Find(&leave).Error
	return leave, err
}

// FindOverlapping retrieves an employee's leave sharing at least one day with [start, end]
func (r *AnnualLeaveRepository) FindOverlapping(employeeID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]models.AnnualLeave, error) {
	var leave []models.AnnualLeave
	query := r.db.
		Where("employee_id = ?", employeeID).
		Where("start_date <= ? AND end_date >= ?", end, start)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	err := query.Order("start_date ASC, id ASC").Find(&leave).Error
	return leave, err
}

// Update updates an existing leave record
func (r *AnnualLeaveRepository) Update(leave *models.AnnualLeave) error {
	return r.db.Save(leave).Error
}

// Delete hard-deletes a leave record
func (r *AnnualLeaveRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.AnnualLeave{}, "id = ?", id).Error
}
