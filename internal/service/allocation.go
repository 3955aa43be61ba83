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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AllocationService handles allocation writes and their conflict warnings.
// Warnings are advisory: a structurally valid allocation is always stored.
type AllocationService struct {
	repo      repository.AllocationRepositoryInterface
	store     repository.StoreInterface
	validator *validator.Validate
}

// NewAllocationService creates a new allocation service
func NewAllocationService(repo repository.AllocationRepositoryInterface, store repository.StoreInterface, validator *validator.Validate) *AllocationService {
	return &AllocationService{
		repo:      repo,
		store:     store,
		validator: validator,
	}
}

// AllocationRequest represents the request to create, update or dry-run an allocation
type AllocationRequest struct {
	EmployeeID  uuid.UUID             `json:"employee_id" validate:"required"`
	Type        models.AllocationType `json:"type" validate:"required,oneof=project sla misc" example:"project"`
	ProjectID   *uuid.UUID            `json:"project_id,omitempty"`
	Title       string                `json:"title,omitempty" validate:"max=200" example:"Support rota"`
	StartDate   string                `json:"start_date" validate:"required,datetime=2006-01-02" example:"2024-03-11"`
	EndDate     string                `json:"end_date" validate:"required,datetime=2006-01-02" example:"2024-03-15"`
	DaysPerWeek *decimal.Decimal      `json:"days_per_week" validate:"required" swaggertype:"number" example:"2.5"`
	Notes       string                `json:"notes,omitempty"`
}

// AllocationResponse represents an allocation
type AllocationResponse struct {
	ID          uuid.UUID             `json:"id"`
	EmployeeID  uuid.UUID             `json:"employee_id"`
	Type        models.AllocationType `json:"type"`
	ProjectID   *uuid.UUID            `json:"project_id,omitempty"`
	Title       string                `json:"title,omitempty"`
	Label       string                `json:"label"`
	StartDate   string                `json:"start_date"`
	EndDate     string                `json:"end_date"`
	DaysPerWeek string                `json:"days_per_week" example:"2.5"`
	Notes       string                `json:"notes,omitempty"`
	CreatedAt   string                `json:"created_at"`
	UpdatedAt   string                `json:"updated_at"`
}

// AllocationWriteResponse is returned by create and update
type AllocationWriteResponse struct {
	Allocation AllocationResponse `json:"allocation"`
	Warnings   []WarningResponse  `json:"warnings"`
}

// ValidationResponse is returned by a dry run
type ValidationResponse struct {
	Warnings []WarningResponse `json:"warnings"`
}

// Create validates, checks for conflicts and stores a new allocation
func (s *AllocationService) Create(ctx context.Context, req *AllocationRequest) (*AllocationWriteResponse, error) {
	allocation, err := s.build(req)
	if err != nil {
		return nil, err
	}

	warnings, err := s.conflicts(ctx, allocation, nil)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(allocation); err != nil {
		return nil, fmt.Errorf("failed to create allocation: %w", err)
	}

	s.logWrite(ctx, "created", allocation, warnings)
	return &AllocationWriteResponse{
		Allocation: *toAllocationResponse(allocation),
		Warnings:   toWarningResponses(warnings),
	}, nil
}

// Update replaces an allocation. Its stored version is excluded from conflict checks.
func (s *AllocationService) Update(ctx context.Context, id uuid.UUID, req *AllocationRequest) (*AllocationWriteResponse, error) {
	allocation, err := s.build(req)
	if err != nil {
		return nil, err
	}

	existing, err := s.getAllocation(id)
	if err != nil {
		return nil, err
	}
	allocation.ID = existing.ID
	allocation.CreatedAt = existing.CreatedAt

	warnings, err := s.conflicts(ctx, allocation, &id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(allocation); err != nil {
		return nil, fmt.Errorf("failed to update allocation: %w", err)
	}

	s.logWrite(ctx, "updated", allocation, warnings)
	return &AllocationWriteResponse{
		Allocation: *toAllocationResponse(allocation),
		Warnings:   toWarningResponses(warnings),
	}, nil
}

// Validate computes the warnings a write would produce without storing anything
func (s *AllocationService) Validate(ctx context.Context, req *AllocationRequest, excludeID *uuid.UUID) (*ValidationResponse, error) {
	allocation, err := s.build(req)
	if err != nil {
		return nil, err
	}
	if excludeID != nil {
		allocation.ID = *excludeID
	}

	warnings, err := s.conflicts(ctx, allocation, excludeID)
	if err != nil {
		return nil, err
	}

	return &ValidationResponse{Warnings: toWarningResponses(warnings)}, nil
}

// GetByID retrieves an allocation by ID
func (s *AllocationService) GetByID(id uuid.UUID) (*AllocationResponse, error) {
	allocation, err := s.getAllocation(id)
	if err != nil {
		return nil, err
	}
	return toAllocationResponse(allocation), nil
}

// GetAll retrieves every allocation, or only one employee's when employeeID is set
func (s *AllocationService) GetAll(employeeID *uuid.UUID) ([]AllocationResponse, error) {
	var (
		allocations []models.Allocation
		err         error
	)
	if employeeID != nil {
		allocations, err = s.repo.GetByEmployeeID(*employeeID)
	} else {
		allocations, err = s.repo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get allocations: %w", err)
	}

	return toAllocationResponses(allocations), nil
}

// Delete hard-deletes an allocation
func (s *AllocationService) Delete(id uuid.UUID) error {
	if _, err := s.getAllocation(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete allocation: %w", err)
	}
	return nil
}

// build turns a request into an allocation, collecting every structural
// problem before any store access happens
func (s *AllocationService) build(req *AllocationRequest) (*models.Allocation, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	span, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	var errs apperrors.ValidationErrors
	subject, field, msg := newSubject(req)
	if subject == nil {
		errs.Add(field, msg)
	}
	daysPerWeek, ok := normalizeDaysPerWeek(*req.DaysPerWeek)
	if !ok {
		errs.Add("days_per_week", "must be between 0 and 7")
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	allocation := &models.Allocation{
		EmployeeID:  req.EmployeeID,
		StartDate:   span.Start,
		EndDate:     span.End,
		DaysPerWeek: daysPerWeek,
		Notes:       req.Notes,
	}
	allocation.SetSubject(subject)
	return allocation, nil
}

func newSubject(req *AllocationRequest) (models.Subject, string, string) {
	switch req.Type {
	case models.AllocationTypeProject:
		if req.ProjectID == nil || *req.ProjectID == uuid.Nil {
			return nil, "project_id", "is required when type is project"
		}
		return models.ProjectSubject{ProjectID: *req.ProjectID}, "", ""
	case models.AllocationTypeSLA:
		if req.Title == "" {
			return nil, "title", "is required when type is sla"
		}
		return models.SLASubject{Title: req.Title}, "", ""
	case models.AllocationTypeMisc:
		if req.Title == "" {
			return nil, "title", "is required when type is misc"
		}
		return models.MiscSubject{Title: req.Title}, "", ""
	}
	return nil, "type", "must be one of: project sla misc"
}

// conflicts reads the employee's neighbouring records from one snapshot and
// runs the conflict check. It also resolves the employee and project references.
func (s *AllocationService) conflicts(ctx context.Context, allocation *models.Allocation, excludeID *uuid.UUID) ([]capacity.Warning, error) {
	var warnings []capacity.Warning
	err := s.store.ReadSnapshot(ctx, func(repos *repository.Repositories) error {
		employee, err := repos.Employees.GetByID(allocation.EmployeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to verify employee: %w", err)
		}

		if allocation.ProjectID != nil {
			project, err := repos.Projects.GetByID(*allocation.ProjectID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrProjectNotFound
				}
				return fmt.Errorf("failed to verify project: %w", err)
			}
			allocation.Project = project
		}

		// whole weeks, so the weekly total sees allocations elsewhere in a shared week
		weeks := capacity.DateRange{Start: allocation.StartDate, End: allocation.EndDate}.Weeks()

		others, err := repos.Allocations.FindOverlapping(allocation.EmployeeID, weeks.Start, weeks.End, excludeID)
		if err != nil {
			return fmt.Errorf("failed to find overlapping allocations: %w", err)
		}
		leave, err := repos.AnnualLeave.FindOverlapping(allocation.EmployeeID, allocation.StartDate, allocation.EndDate, nil)
		if err != nil {
			return fmt.Errorf("failed to find overlapping leave: %w", err)
		}

		warnings = capacity.Conflicts(toCommitment(allocation), workDaysOf(employee), toCommitments(others), toAbsences(leave))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return warnings, nil
}

func (s *AllocationService) logWrite(ctx context.Context, action string, allocation *models.Allocation, warnings []capacity.Warning) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"allocation_id": allocation.ID,
		"employee_id":   allocation.EmployeeID,
		"warnings":      len(warnings),
	})
	if len(warnings) > 0 {
		log.Warnf("Allocation %s with %d conflict warning(s)", action, len(warnings))
		return
	}
	log.Infof("Allocation %s", action)
}

func (s *AllocationService) getAllocation(id uuid.UUID) (*models.Allocation, error) {
	allocation, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAllocationNotFound
		}
		return nil, fmt.Errorf("failed to get allocation: %w", err)
	}
	return allocation, nil
}

func toAllocationResponse(a *models.Allocation) *AllocationResponse {
	return &AllocationResponse{
		ID:          a.ID,
		EmployeeID:  a.EmployeeID,
		Type:        a.Type,
		ProjectID:   a.ProjectID,
		Title:       a.Title,
		Label:       a.Label(),
		StartDate:   capacity.FormatDate(a.StartDate),
		EndDate:     capacity.FormatDate(a.EndDate),
		DaysPerWeek: a.DaysPerWeek.StringFixed(1),
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   a.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toAllocationResponses(allocations []models.Allocation) []AllocationResponse {
	responses := make([]AllocationResponse, len(allocations))
	for i := range allocations {
		responses[i] = *toAllocationResponse(&allocations[i])
	}
	return responses
}
