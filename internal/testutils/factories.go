package testutils

import (
	"time"

	"team-capacity-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Date parses a YYYY-MM-DD literal for test fixtures
func Date(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee working Monday to Friday
func (f *EmployeeFactory) Create() *models.Employee {
	id := uuid.New()
	return &models.Employee{
		SoftDeleteModel: models.SoftDeleteModel{
			BaseModel: models.BaseModel{
				ID:        id,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
		},
		Name:               "Jane Doe",
		Email:              "jane.doe+" + id.String()[:8] + "@test.com",
		WorkDays:           models.WorkDays{1, 2, 3, 4, 5},
		AnnualLeaveDefault: 25,
		IsVisible:          true,
	}
}

// WithName sets a custom name for the employee
func (f *EmployeeFactory) WithName(name string) *models.Employee {
	employee := f.Create()
	employee.Name = name
	return employee
}

// WithWorkDays sets a custom working pattern
func (f *EmployeeFactory) WithWorkDays(days ...int) *models.Employee {
	employee := f.Create()
	employee.WorkDays = days
	return employee
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	return &models.Project{
		SoftDeleteModel: models.SoftDeleteModel{
			BaseModel: models.BaseModel{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
		},
		Name:      "Test Project",
		Color:     "#3b82f6",
		Status:    models.ProjectStatusInProgress,
		IsVisible: true,
	}
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(name string) *models.Project {
	project := f.Create()
	project.Name = name
	return project
}

// AllocationFactory provides methods to create test Allocation data
type AllocationFactory struct{}

// NewAllocationFactory creates a new AllocationFactory
func NewAllocationFactory() *AllocationFactory {
	return &AllocationFactory{}
}

// Create creates a full-time misc allocation over the first week of March 2024
func (f *AllocationFactory) Create() *models.Allocation {
	allocation := &models.Allocation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EmployeeID:  uuid.New(),
		StartDate:   Date("2024-03-04"),
		EndDate:     Date("2024-03-08"),
		DaysPerWeek: decimal.NewFromInt(5),
	}
	allocation.SetSubject(models.MiscSubject{Title: "Internal work"})
	return allocation
}

// ForProject creates a project allocation for an employee
func (f *AllocationFactory) ForProject(employeeID, projectID uuid.UUID, start, end string, daysPerWeek string) *models.Allocation {
	allocation := f.Create()
	allocation.EmployeeID = employeeID
	allocation.SetSubject(models.ProjectSubject{ProjectID: projectID})
	allocation.StartDate = Date(start)
	allocation.EndDate = Date(end)
	allocation.DaysPerWeek = decimal.RequireFromString(daysPerWeek)
	return allocation
}

// WithRange creates a misc allocation for an employee over the given range
func (f *AllocationFactory) WithRange(employeeID uuid.UUID, start, end string, daysPerWeek string) *models.Allocation {
	allocation := f.Create()
	allocation.EmployeeID = employeeID
	allocation.StartDate = Date(start)
	allocation.EndDate = Date(end)
	allocation.DaysPerWeek = decimal.RequireFromString(daysPerWeek)
	return allocation
}

// AnnualLeaveFactory provides methods to create test AnnualLeave data
type AnnualLeaveFactory struct{}

// NewAnnualLeaveFactory creates a new AnnualLeaveFactory
func NewAnnualLeaveFactory() *AnnualLeaveFactory {
	return &AnnualLeaveFactory{}
}

// Create creates a two-day leave record
func (f *AnnualLeaveFactory) Create() *models.AnnualLeave {
	return &models.AnnualLeave{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EmployeeID: uuid.New(),
		StartDate:  Date("2024-03-11"),
		EndDate:    Date("2024-03-12"),
		DaysCount:  2,
	}
}

// WithRange creates leave for an employee over the given range
func (f *AnnualLeaveFactory) WithRange(employeeID uuid.UUID, start, end string) *models.AnnualLeave {
	leave := f.Create()
	leave.EmployeeID = employeeID
	leave.StartDate = Date(start)
	leave.EndDate = Date(end)
	leave.DaysCount = int(leave.EndDate.Sub(leave.StartDate).Hours()/24) + 1
	return leave
}

// CalendarMarkerFactory provides methods to create test CalendarMarker data
type CalendarMarkerFactory struct{}

// NewCalendarMarkerFactory creates a new CalendarMarkerFactory
func NewCalendarMarkerFactory() *CalendarMarkerFactory {
	return &CalendarMarkerFactory{}
}

// Create creates a system milestone marker
func (f *CalendarMarkerFactory) Create() *models.CalendarMarker {
	return &models.CalendarMarker{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Date:  Date("2024-03-15"),
		Title: "Release",
		Color: "#ef4444",
		Type:  models.MarkerTypeMilestone,
	}
}

// OnDate creates a marker on the given day
func (f *CalendarMarkerFactory) OnDate(date string) *models.CalendarMarker {
	marker := f.Create()
	marker.Date = Date(date)
	return marker
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test member account with a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:  "Test User",
		Email: "user+" + id.String()[:8] + "@test.com",
		Role:  models.UserRoleMember,
	}
}

// WithRole creates a user with the given role
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// FactorySet provides access to all factories
type FactorySet struct {
	Employee       *EmployeeFactory
	Project        *ProjectFactory
	Allocation     *AllocationFactory
	AnnualLeave    *AnnualLeaveFactory
	CalendarMarker *CalendarMarkerFactory
	User           *UserFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Employee:       NewEmployeeFactory(),
		Project:        NewProjectFactory(),
		Allocation:     NewAllocationFactory(),
		AnnualLeave:    NewAnnualLeaveFactory(),
		CalendarMarker: NewCalendarMarkerFactory(),
		User:           NewUserFactory(),
	}
}
