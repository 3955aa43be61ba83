package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"team-capacity-backend/internal/capacity"
	"team-capacity-backend/internal/database/models"
	apperrors "team-capacity-backend/internal/errors"
	"team-capacity-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CapacityService reports week-by-week load against work days
type CapacityService struct {
	store repository.StoreInterface
	now   func() time.Time
}

// NewCapacityService creates a new capacity service
func NewCapacityService(store repository.StoreInterface) *CapacityService {
	return &CapacityService{
		store: store,
		now:   time.Now,
	}
}

// WeekCapacityResponse is one Monday-start week of an employee's capacity
type WeekCapacityResponse struct {
	WeekStart     string      `json:"week_start" example:"2024-03-11"`
	WeekEnd       string      `json:"week_end" example:"2024-03-17"`
	Allocated     string      `json:"allocated" example:"7.0"`
	WorkDays      int         `json:"work_days" example:"5"`
	LeaveDays     int         `json:"leave_days" example:"0"`
	Available     string      `json:"available" example:"5.0"`
	OverCommitted bool        `json:"over_committed"`
	AllocationIDs []uuid.UUID `json:"allocation_ids"`
}

// EmployeeCapacityResponse is the capacity report of one employee
type EmployeeCapacityResponse struct {
	EmployeeID uuid.UUID              `json:"employee_id"`
	Name       string                 `json:"name"`
	WorkDays   []int                  `json:"work_days"`
	Start      string                 `json:"start"`
	End        string                 `json:"end"`
	Weeks      []WeekCapacityResponse `json:"weeks"`
}

// TeamCapacityResponse is the capacity report of every visible employee
type TeamCapacityResponse struct {
	Start     string                     `json:"start"`
	End       string                     `json:"end"`
	Employees []EmployeeCapacityResponse `json:"employees"`
}

// GetEmployeeCapacity reports one employee's weeks over the window
func (s *CapacityService) GetEmployeeCapacity(ctx context.Context, employeeID uuid.UUID, start, end string) (*EmployeeCapacityResponse, error) {
	window, err := resolveWindow(start, end, s.now())
	if err != nil {
		return nil, err
	}

	var report *EmployeeCapacityResponse
	err = s.store.ReadSnapshot(ctx, func(repos *repository.Repositories) error {
		employee, err := repos.Employees.GetByID(employeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to get employee: %w", err)
		}

		report, err = employeeCapacity(repos, employee, window)
		return err
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// GetTeamCapacity reports every visible employee over the window
func (s *CapacityService) GetTeamCapacity(ctx context.Context, start, end string) (*TeamCapacityResponse, error) {
	window, err := resolveWindow(start, end, s.now())
	if err != nil {
		return nil, err
	}

	team := &TeamCapacityResponse{
		Start:     capacity.FormatDate(window.Start),
		End:       capacity.FormatDate(window.End),
		Employees: []EmployeeCapacityResponse{},
	}
	err = s.store.ReadSnapshot(ctx, func(repos *repository.Repositories) error {
		employees, err := repos.Employees.GetVisible()
		if err != nil {
			return fmt.Errorf("failed to get employees: %w", err)
		}
		for i := range employees {
			report, err := employeeCapacity(repos, &employees[i], window)
			if err != nil {
				return err
			}
			team.Employees = append(team.Employees, *report)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

func employeeCapacity(repos *repository.Repositories, employee *models.Employee, window capacity.DateRange) (*EmployeeCapacityResponse, error) {
	weeks := window.Weeks()

	allocations, err := repos.Allocations.FindOverlapping(employee.ID, weeks.Start, weeks.End, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to find allocations: %w", err)
	}
	leave, err := repos.AnnualLeave.FindOverlapping(employee.ID, weeks.Start, weeks.End, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to find annual leave: %w", err)
	}

	workDays := workDaysOf(employee)
	calc := capacity.NewCalculator(workDays, toCommitments(allocations), toAbsences(leave))

	report := &EmployeeCapacityResponse{
		EmployeeID: employee.ID,
		Name:       employee.Name,
		WorkDays:   workDays.Indices(),
		Start:      capacity.FormatDate(window.Start),
		End:        capacity.FormatDate(window.End),
		Weeks:      []WeekCapacityResponse{},
	}
	for _, w := range calc.Weeks(window) {
		report.Weeks = append(report.Weeks, WeekCapacityResponse{
			WeekStart:     capacity.FormatDate(w.Week.Start),
			WeekEnd:       capacity.FormatDate(w.Week.End),
			Allocated:     w.Allocated.StringFixed(1),
			WorkDays:      w.WorkDays,
			LeaveDays:     w.LeaveDays,
			Available:     w.Available.StringFixed(1),
			OverCommitted: w.OverCommitted,
			AllocationIDs: w.Commitments,
		})
	}
	return report, nil
}
