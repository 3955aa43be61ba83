package service_test

import (
	"context"
	"time"

	"team-capacity-backend/internal/database/models"
	"team-capacity-backend/internal/mocks"
	"team-capacity-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

// snapshotRepos wires mocked repositories into a Repositories value and
// makes the mocked store run snapshot callbacks against them.
type snapshotRepos struct {
	store       *mocks.MockStoreInterface
	employees   *mocks.MockEmployeeRepositoryInterface
	projects    *mocks.MockProjectRepositoryInterface
	allocations *mocks.MockAllocationRepositoryInterface
	leave       *mocks.MockAnnualLeaveRepositoryInterface
	markers     *mocks.MockCalendarMarkerRepositoryInterface
	users       *mocks.MockUserRepositoryInterface
}

func newSnapshotRepos(ctrl *gomock.Controller) *snapshotRepos {
	return &snapshotRepos{
		store:       mocks.NewMockStoreInterface(ctrl),
		employees:   mocks.NewMockEmployeeRepositoryInterface(ctrl),
		projects:    mocks.NewMockProjectRepositoryInterface(ctrl),
		allocations: mocks.NewMockAllocationRepositoryInterface(ctrl),
		leave:       mocks.NewMockAnnualLeaveRepositoryInterface(ctrl),
		markers:     mocks.NewMockCalendarMarkerRepositoryInterface(ctrl),
		users:       mocks.NewMockUserRepositoryInterface(ctrl),
	}
}

func (r *snapshotRepos) repositories() *repository.Repositories {
	return &repository.Repositories{
		Employees:   r.employees,
		Projects:    r.projects,
		Allocations: r.allocations,
		AnnualLeave: r.leave,
		Markers:     r.markers,
		Users:       r.users,
	}
}

// expectSnapshot allows times snapshot reads
func (r *snapshotRepos) expectSnapshot(times int) {
	r.store.EXPECT().
		ReadSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*repository.Repositories) error) error {
			return fn(r.repositories())
		}).
		Times(times)
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func days(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newEmployee(name string) *models.Employee {
	return &models.Employee{
		SoftDeleteModel: models.SoftDeleteModel{BaseModel: models.BaseModel{ID: uuid.New()}},
		Name:            name,
		WorkDays:        models.WorkDays{1, 2, 3, 4, 5},
		IsVisible:       true,
	}
}

func miscAllocation(employeeID uuid.UUID, title, start, end, dpw string) models.Allocation {
	a := models.Allocation{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		EmployeeID:  employeeID,
		StartDate:   date(start),
		EndDate:     date(end),
		DaysPerWeek: *days(dpw),
	}
	a.SetSubject(models.MiscSubject{Title: title})
	return a
}
