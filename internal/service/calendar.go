package service

import (
	"context"
	"fmt"
	"time"

	"team-capacity-backend/internal/capacity"
	"team-capacity-backend/internal/repository"
)

// CalendarService builds the calendar payload
type CalendarService struct {
	store repository.StoreInterface
	now   func() time.Time
}

// NewCalendarService creates a new calendar service
func NewCalendarService(store repository.StoreInterface) *CalendarService {
	return &CalendarService{
		store: store,
		now:   time.Now,
	}
}

// CalendarViewResponse is everything the calendar grid needs for one window.
// Allocations and leave are never filtered by the window; markers are.
type CalendarViewResponse struct {
	Start       string                   `json:"start" example:"2024-02-26"`
	End         string                   `json:"end" example:"2024-03-31"`
	Employees   []EmployeeResponse       `json:"employees"`
	Projects    []ProjectResponse        `json:"projects"`
	Allocations []AllocationResponse     `json:"allocations"`
	AnnualLeave []AnnualLeaveResponse    `json:"annual_leave"`
	Markers     []CalendarMarkerResponse `json:"markers"`
}

// GetCalendarView reads the view from a single snapshot
func (s *CalendarService) GetCalendarView(ctx context.Context, start, end string) (*CalendarViewResponse, error) {
	window, err := resolveWindow(start, end, s.now())
	if err != nil {
		return nil, err
	}

	view := &CalendarViewResponse{
		Start: capacity.FormatDate(window.Start),
		End:   capacity.FormatDate(window.End),
	}

	err = s.store.ReadSnapshot(ctx, func(repos *repository.Repositories) error {
		employees, err := repos.Employees.GetVisible()
		if err != nil {
			return fmt.Errorf("failed to get employees: %w", err)
		}
		projects, err := repos.Projects.GetVisible()
		if err != nil {
			return fmt.Errorf("failed to get projects: %w", err)
		}
		allocations, err := repos.Allocations.GetAll()
		if err != nil {
			return fmt.Errorf("failed to get allocations: %w", err)
		}
		leave, err := repos.AnnualLeave.GetAll()
		if err != nil {
			return fmt.Errorf("failed to get annual leave: %w", err)
		}
		markers, err := repos.Markers.GetInRange(window.Start, window.End)
		if err != nil {
			return fmt.Errorf("failed to get calendar markers: %w", err)
		}

		view.Employees = make([]EmployeeResponse, len(employees))
		for i := range employees {
			view.Employees[i] = *toEmployeeResponse(&employees[i])
		}
		view.Projects = make([]ProjectResponse, len(projects))
		for i := range projects {
			view.Projects[i] = *toProjectResponse(&projects[i])
		}
		view.Allocations = toAllocationResponses(allocations)
		view.AnnualLeave = toAnnualLeaveResponses(leave)
		view.Markers = toCalendarMarkerResponses(markers)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}
