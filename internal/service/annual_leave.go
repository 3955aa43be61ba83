package service

import (
	"context"
	"errors"
	"fmt"

	"team-capacity-backend/internal/capacity"
	"team-capacity-backend/internal/database/models"
	apperrors "team-capacity-backend/internal/errors"
	"team-capacity-backend/internal/logger"
	"team-capacity-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnnualLeaveService handles business logic for annual leave
type AnnualLeaveService struct {
	repo      repository.AnnualLeaveRepositoryInterface
	store     repository.StoreInterface
	validator *validator.Validate
}

// NewAnnualLeaveService creates a new annual leave service
func NewAnnualLeaveService(repo repository.AnnualLeaveRepositoryInterface, store repository.StoreInterface, validator *validator.Validate) *AnnualLeaveService {
	return &AnnualLeaveService{
		repo:      repo,
		store:     store,
		validator: validator,
	}
}

// CreateAnnualLeaveRequest represents the request to book annual leave
type CreateAnnualLeaveRequest struct {
	EmployeeID uuid.UUID `json:"employee_id" validate:"required"`
	StartDate  string    `json:"start_date" validate:"required,datetime=2006-01-02" example:"2024-03-11"`
	EndDate    string    `json:"end_date" validate:"required,datetime=2006-01-02" example:"2024-03-12"`
	DaysCount  *int      `json:"days_count,omitempty" validate:"omitempty,min=0,max=366" example:"2"`
	Notes      string    `json:"notes,omitempty"`
}

// UpdateAnnualLeaveRequest represents the request to update annual leave.
// DaysCount is kept as stored unless given.
type UpdateAnnualLeaveRequest struct {
	StartDate *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DaysCount *int    `json:"days_count,omitempty" validate:"omitempty,min=0,max=366"`
	Notes     *string `json:"notes,omitempty"`
}

// AnnualLeaveResponse represents an annual leave record
type AnnualLeaveResponse struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	DaysCount  int       `json:"days_count"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  string    `json:"created_at"`
	UpdatedAt  string    `json:"updated_at"`
}

// AnnualLeaveWriteResponse is returned by create and update
type AnnualLeaveWriteResponse struct {
	AnnualLeave AnnualLeaveResponse `json:"annual_leave"`
	Warnings    []WarningResponse   `json:"warnings"`
}

// Create books leave, deriving days_count from the range when it is not given
func (s *AnnualLeaveService) Create(ctx context.Context, req *CreateAnnualLeaveRequest) (*AnnualLeaveWriteResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	span, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	daysCount := span.Days()
	if req.DaysCount != nil {
		daysCount = *req.DaysCount
	}

	leave := &models.AnnualLeave{
		EmployeeID: req.EmployeeID,
		StartDate:  span.Start,
		EndDate:    span.End,
		DaysCount:  daysCount,
		Notes:      req.Notes,
	}

	warnings, err := s.overlaps(ctx, leave)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(leave); err != nil {
		return nil, fmt.Errorf("failed to create annual leave: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"annual_leave_id": leave.ID,
		"employee_id":     leave.EmployeeID,
		"warnings":        len(warnings),
	}).Info("Annual leave created")

	return &AnnualLeaveWriteResponse{
		AnnualLeave: *toAnnualLeaveResponse(leave),
		Warnings:    toWarningResponses(warnings),
	}, nil
}

// Update changes the dates or notes of a leave record
func (s *AnnualLeaveService) Update(ctx context.Context, id uuid.UUID, req *UpdateAnnualLeaveRequest) (*AnnualLeaveWriteResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	leave, err := s.getAnnualLeave(id)
	if err != nil {
		return nil, err
	}

	start := capacity.FormatDate(leave.StartDate)
	if req.StartDate != nil {
		start = *req.StartDate
	}
	end := capacity.FormatDate(leave.EndDate)
	if req.EndDate != nil {
		end = *req.EndDate
	}
	span, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}

	leave.StartDate = span.Start
	leave.EndDate = span.End
	if req.DaysCount != nil {
		leave.DaysCount = *req.DaysCount
	}
	if req.Notes != nil {
		leave.Notes = *req.Notes
	}

	warnings, err := s.overlaps(ctx, leave)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(leave); err != nil {
		return nil, fmt.Errorf("failed to update annual leave: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"annual_leave_id": leave.ID,
		"employee_id":     leave.EmployeeID,
		"warnings":        len(warnings),
	}).Info("Annual leave updated")

	return &AnnualLeaveWriteResponse{
		AnnualLeave: *toAnnualLeaveResponse(leave),
		Warnings:    toWarningResponses(warnings),
	}, nil
}

// GetByID retrieves a leave record by ID
func (s *AnnualLeaveService) GetByID(id uuid.UUID) (*AnnualLeaveResponse, error) {
	leave, err := s.getAnnualLeave(id)
	if err != nil {
		return nil, err
	}
	return toAnnualLeaveResponse(leave), nil
}

// GetAll retrieves every leave record, or only one employee's when employeeID is set
func (s *AnnualLeaveService) GetAll(employeeID *uuid.UUID) ([]AnnualLeaveResponse, error) {
	var (
		leave []models.AnnualLeave
		err   error
	)
	if employeeID != nil {
		leave, err = s.repo.GetByEmployeeID(*employeeID)
	} else {
		leave, err = s.repo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get annual leave: %w", err)
	}

	return toAnnualLeaveResponses(leave), nil
}

// Delete hard-deletes a leave record
func (s *AnnualLeaveService) Delete(id uuid.UUID) error {
	if _, err := s.getAnnualLeave(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete annual leave: %w", err)
	}
	return nil
}

// overlaps lists the allocations the leave lands on, one warning each
func (s *AnnualLeaveService) overlaps(ctx context.Context, leave *models.AnnualLeave) ([]capacity.Warning, error) {
	var warnings []capacity.Warning
	err := s.store.ReadSnapshot(ctx, func(repos *repository.Repositories) error {
		employee, err := repos.Employees.GetByID(leave.EmployeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to verify employee: %w", err)
		}

		allocations, err := repos.Allocations.FindOverlapping(leave.EmployeeID, leave.StartDate, leave.EndDate, nil)
		if err != nil {
			return fmt.Errorf("failed to find overlapping allocations: %w", err)
		}

		warnings = capacity.LeaveOverlaps(toAbsence(leave), workDaysOf(employee), toCommitments(allocations))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return warnings, nil
}

func (s *AnnualLeaveService) getAnnualLeave(id uuid.UUID) (*models.AnnualLeave, error) {
	leave, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAnnualLeaveNotFound
		}
		return nil, fmt.Errorf("failed to get annual leave: %w", err)
	}
	return leave, nil
}

func toAnnualLeaveResponse(l *models.AnnualLeave) *AnnualLeaveResponse {
	return &AnnualLeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		StartDate:  capacity.FormatDate(l.StartDate),
		EndDate:    capacity.FormatDate(l.EndDate),
		DaysCount:  l.DaysCount,
		Notes:      l.Notes,
		CreatedAt:  l.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:  l.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toAnnualLeaveResponses(leave []models.AnnualLeave) []AnnualLeaveResponse {
	responses := make([]AnnualLeaveResponse, len(leave))
	for i := range leave {
		responses[i] = *toAnnualLeaveResponse(&leave[i])
	}
	return responses
}
