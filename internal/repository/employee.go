package repository

import (
	"team-capacity-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// GetByID retrieves an employee by ID. Soft-deleted employees are not returned.
func (r *EmployeeRepository) GetByID(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetAll retrieves all employees ordered by name
func (r *EmployeeRepository) GetAll() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Order("name ASC").Find(&employees).Error
	return employees, err
}

// GetVisible retrieves employees shown on the calendar: visible, and not
// linked to a guest account
func (r *EmployeeRepository) GetVisible() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.
		Where("employees.is_visible = ?", true).
		Where("NOT EXISTS (SELECT 1 FROM users WHERE users.employee_id = employees.id AND users.role = ?)", models.UserRoleGuest).
		Order("employees.name ASC").
		Find(&employees).Error
	return employees, err
}

// Update updates an existing employee
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

// Delete soft-deletes an employee; their allocations and leave are kept
func (r *EmployeeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Employee{}, "id = ?", id).Error
}
