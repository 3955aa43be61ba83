package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// EmployeeServiceInterface defines the interface for employee service operations
type EmployeeServiceInterface interface {
	Create(req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetByID(id uuid.UUID) (*EmployeeResponse, error)
	GetAll() ([]EmployeeResponse, error)
	Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	Delete(id uuid.UUID) error
	GetLeaveSummary(id uuid.UUID, year int) (*LeaveSummaryResponse, error)
}

// ProjectServiceInterface defines the interface for project service operations
type ProjectServiceInterface interface {
	Create(req *CreateProjectRequest) (*ProjectResponse, error)
	GetByID(id uuid.UUID) (*ProjectResponse, error)
	GetAll() ([]ProjectResponse, error)
	Update(id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error)
	Delete(id uuid.UUID) error
}

// AllocationServiceInterface defines the interface for allocation service operations
type AllocationServiceInterface interface {
	Create(ctx context.Context, req *AllocationRequest) (*AllocationWriteResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *AllocationRequest) (*AllocationWriteResponse, error)
	Validate(ctx context.Context, req *AllocationRequest, excludeID *uuid.UUID) (*ValidationResponse, error)
	GetByID(id uuid.UUID) (*AllocationResponse, error)
	GetAll(employeeID *uuid.UUID) ([]AllocationResponse, error)
	Delete(id uuid.UUID) error
}

// AnnualLeaveServiceInterface defines the interface for annual leave service operations
type AnnualLeaveServiceInterface interface {
	Create(ctx context.Context, req *CreateAnnualLeaveRequest) (*AnnualLeaveWriteResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateAnnualLeaveRequest) (*AnnualLeaveWriteResponse, error)
	GetByID(id uuid.UUID) (*AnnualLeaveResponse, error)
	GetAll(employeeID *uuid.UUID) ([]AnnualLeaveResponse, error)
	Delete(id uuid.UUID) error
}

// CalendarMarkerServiceInterface defines the interface for calendar marker service operations
type CalendarMarkerServiceInterface interface {
	Create(req *CreateCalendarMarkerRequest) (*CalendarMarkerResponse, error)
	GetByID(id uuid.UUID) (*CalendarMarkerResponse, error)
	GetInRange(start, end string) ([]CalendarMarkerResponse, error)
	Update(id uuid.UUID, req *UpdateCalendarMarkerRequest) (*CalendarMarkerResponse, error)
	Delete(id uuid.UUID) error
}

// UserServiceInterface defines the interface for user service operations
type UserServiceInterface interface {
	Create(req *CreateUserRequest) (*UserResponse, error)
	GetByID(id uuid.UUID) (*UserResponse, error)
	GetAll() ([]UserResponse, error)
	Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Delete(id uuid.UUID) error
}

// CalendarServiceInterface defines the interface for the calendar view
type CalendarServiceInterface interface {
	GetCalendarView(ctx context.Context, start, end string) (*CalendarViewResponse, error)
}

// CapacityServiceInterface defines the interface for capacity reports
type CapacityServiceInterface interface {
	GetEmployeeCapacity(ctx context.Context, employeeID uuid.UUID, start, end string) (*EmployeeCapacityResponse, error)
	GetTeamCapacity(ctx context.Context, start, end string) (*TeamCapacityResponse, error)
}
