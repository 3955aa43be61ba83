package service

import (
	"errors"
	"fmt"

	"team-capacity-backend/internal/capacity"
	"team-capacity-backend/internal/database/models"
	apperrors "team-capacity-backend/internal/errors"
	"team-capacity-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeService handles business logic for employees
type EmployeeService struct {
	repo               repository.EmployeeRepositoryInterface
	leaveRepo          repository.AnnualLeaveRepositoryInterface
	validator          *validator.Validate
	defaultAnnualLeave int
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.EmployeeRepositoryInterface, leaveRepo repository.AnnualLeaveRepositoryInterface, validator *validator.Validate, defaultAnnualLeave int) *EmployeeService {
	return &EmployeeService{
		repo:               repo,
		leaveRepo:          leaveRepo,
		validator:          validator,
		defaultAnnualLeave: defaultAnnualLeave,
	}
}

// CreateEmployeeRequest represents the request to create an employee
type CreateEmployeeRequest struct {
	Name               string `json:"name" validate:"required,min=1,max=200" example:"Jane Doe"`
	Email              string `json:"email,omitempty" validate:"omitempty,email,max=255" example:"jane.doe@example.com"`
	WorkDays           []int  `json:"work_days,omitempty" validate:"omitempty,max=7,unique,dive,min=0,max=6" example:"1,2,3,4,5"`
	AnnualLeaveDefault *int   `json:"annual_leave_default,omitempty" validate:"omitempty,min=0,max=366" example:"25"`
	IsVisible          *bool  `json:"is_visible,omitempty"`
}

// UpdateEmployeeRequest represents the request to update an employee
type UpdateEmployeeRequest struct {
	Name               *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email              *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	WorkDays           []int   `json:"work_days,omitempty" validate:"omitempty,max=7,unique,dive,min=0,max=6"`
	AnnualLeaveDefault *int    `json:"annual_leave_default,omitempty" validate:"omitempty,min=0,max=366"`
	IsVisible          *bool   `json:"is_visible,omitempty"`
}

// EmployeeResponse represents the response for employee operations
type EmployeeResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email,omitempty"`
	WorkDays           []int     `json:"work_days"`
	AnnualLeaveDefault int       `json:"annual_leave_default"`
	IsVisible          bool      `json:"is_visible"`
	CreatedAt          string    `json:"created_at"`
	UpdatedAt          string    `json:"updated_at"`
}

// LeaveSummaryResponse reports leave taken against the yearly entitlement
type LeaveSummaryResponse struct {
	EmployeeID    uuid.UUID             `json:"employee_id"`
	Year          int                   `json:"year"`
	Entitlement   int                   `json:"entitlement"`
	DaysTaken     int                   `json:"days_taken"`
	DaysRemaining int                   `json:"days_remaining"`
	Leave         []AnnualLeaveResponse `json:"leave"`
}

// Create creates a new employee
func (s *EmployeeService) Create(req *CreateEmployeeRequest) (*EmployeeResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	workDays, err := capacity.NewWorkDays(req.WorkDays)
	if err != nil {
		return nil, apperrors.NewValidationError("work_days", err.Error())
	}

	annualLeave := s.defaultAnnualLeave
	if req.AnnualLeaveDefault != nil {
		annualLeave = *req.AnnualLeaveDefault
	}
	isVisible := true
	if req.IsVisible != nil {
		isVisible = *req.IsVisible
	}

	employee := &models.Employee{
		Name:               req.Name,
		Email:              req.Email,
		WorkDays:           workDays.Indices(),
		AnnualLeaveDefault: annualLeave,
		IsVisible:          isVisible,
	}

	if err := s.repo.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return toEmployeeResponse(employee), nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.getEmployee(id)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetAll retrieves all employees
func (s *EmployeeService) GetAll() ([]EmployeeResponse, error) {
	employees, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = *toEmployeeResponse(&employees[i])
	}
	return responses, nil
}

// Update updates an employee
func (s *EmployeeService) Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	employee, err := s.getEmployee(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.WorkDays != nil {
		workDays, err := capacity.NewWorkDays(req.WorkDays)
		if err != nil {
			return nil, apperrors.NewValidationError("work_days", err.Error())
		}
		employee.WorkDays = workDays.Indices()
	}
	if req.AnnualLeaveDefault != nil {
		employee.AnnualLeaveDefault = *req.AnnualLeaveDefault
	}
	if req.IsVisible != nil {
		employee.IsVisible = *req.IsVisible
	}

	if err := s.repo.Update(employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return toEmployeeResponse(employee), nil
}

// Delete soft-deletes an employee
func (s *EmployeeService) Delete(id uuid.UUID) error {
	if _, err := s.getEmployee(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// GetLeaveSummary totals the leave starting in year against the employee's entitlement
func (s *EmployeeService) GetLeaveSummary(id uuid.UUID, year int) (*LeaveSummaryResponse, error) {
	if year < 1900 || year > 9999 {
		return nil, apperrors.NewValidationError("year", "must be between 1900 and 9999")
	}

	employee, err := s.getEmployee(id)
	if err != nil {
		return nil, err
	}

	leave, err := s.leaveRepo.GetByEmployeeID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get annual leave: %w", err)
	}

	summary := &LeaveSummaryResponse{
		EmployeeID:  employee.ID,
		Year:        year,
		Entitlement: employee.AnnualLeaveDefault,
		Leave:       []AnnualLeaveResponse{},
	}
	for i := range leave {
		if leave[i].StartDate.Year() != year {
			continue
		}
		summary.DaysTaken += leave[i].DaysCount
		summary.Leave = append(summary.Leave, *toAnnualLeaveResponse(&leave[i]))
	}
	summary.DaysRemaining = summary.Entitlement - summary.DaysTaken

	return summary, nil
}

func (s *EmployeeService) getEmployee(id uuid.UUID) (*models.Employee, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

func toEmployeeResponse(employee *models.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:                 employee.ID,
		Name:               employee.Name,
		Email:              employee.Email,
		WorkDays:           workDaysOf(employee).Indices(),
		AnnualLeaveDefault: employee.AnnualLeaveDefault,
		IsVisible:          employee.IsVisible,
		CreatedAt:          employee.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:          employee.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
