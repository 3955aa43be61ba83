package service_test

import (
	"context"
	"errors"
	"testing"

	"team-capacity-backend/internal/database/models"
	apperrors "team-capacity-backend/internal/errors"
	"team-capacity-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type CapacityServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repos   *snapshotRepos
	service *service.CapacityService
}

func (suite *CapacityServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repos = newSnapshotRepos(suite.ctrl)
	suite.service = service.NewCapacityService(suite.repos.store)
}

func (suite *CapacityServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CapacityServiceTestSuite) TestEmployeeCapacity() {
	dana := newEmployee("Dana")
	full := miscAllocation(dana.ID, "Platform", "2024-03-04", "2024-03-29", "5")
	extra := miscAllocation(dana.ID, "Support", "2024-03-11", "2024-03-15", "2")
	leave := models.AnnualLeave{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		EmployeeID: dana.ID,
		StartDate:  date("2024-03-22"),
		EndDate:    date("2024-03-25"),
		DaysCount:  2,
	}

	suite.repos.expectSnapshot(1)
	suite.repos.employees.EXPECT().GetByID(dana.ID).Return(dana, nil)
	suite.repos.allocations.EXPECT().
		FindOverlapping(dana.ID, date("2024-03-04"), date("2024-03-24"), nil).
		Return([]models.Allocation{full, extra}, nil)
	suite.repos.leave.EXPECT().
		FindOverlapping(dana.ID, date("2024-03-04"), date("2024-03-24"), nil).
		Return([]models.AnnualLeave{leave}, nil)

	report, err := suite.service.GetEmployeeCapacity(context.Background(), dana.ID, "2024-03-04", "2024-03-24")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Dana", report.Name)
	require.Len(suite.T(), report.Weeks, 3)

	assert.Equal(suite.T(), "2024-03-04", report.Weeks[0].WeekStart)
	assert.Equal(suite.T(), "5.0", report.Weeks[0].Allocated)
	assert.False(suite.T(), report.Weeks[0].OverCommitted)

	assert.Equal(suite.T(), "7.0", report.Weeks[1].Allocated)
	assert.True(suite.T(), report.Weeks[1].OverCommitted)
	assert.ElementsMatch(suite.T(), []uuid.UUID{full.ID, extra.ID}, report.Weeks[1].AllocationIDs)

	// Friday 22nd is the only leave work day in the third week
	assert.Equal(suite.T(), 1, report.Weeks[2].LeaveDays)
	assert.Equal(suite.T(), "4.0", report.Weeks[2].Available)
}

func (suite *CapacityServiceTestSuite) TestEmployeeCapacity_NotFound() {
	id := uuid.New()
	suite.repos.expectSnapshot(1)
	suite.repos.employees.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	report, err := suite.service.GetEmployeeCapacity(context.Background(), id, "2024-03-04", "2024-03-24")

	assert.Nil(suite.T(), report)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrEmployeeNotFound))
}

func (suite *CapacityServiceTestSuite) TestTeamCapacity() {
	erin := newEmployee("Erin")
	frank := newEmployee("Frank")
	frank.WorkDays = models.WorkDays{1, 2, 3}

	suite.repos.expectSnapshot(1)
	suite.repos.employees.EXPECT().GetVisible().Return([]models.Employee{*erin, *frank}, nil)
	suite.repos.allocations.EXPECT().FindOverlapping(gomock.Any(), gomock.Any(), gomock.Any(), nil).Return(nil, nil).Times(2)
	suite.repos.leave.EXPECT().FindOverlapping(gomock.Any(), gomock.Any(), gomock.Any(), nil).Return(nil, nil).Times(2)

	team, err := suite.service.GetTeamCapacity(context.Background(), "2024-03-11", "2024-03-17")

	require.NoError(suite.T(), err)
	require.Len(suite.T(), team.Employees, 2)
	assert.Equal(suite.T(), 5, team.Employees[0].Weeks[0].WorkDays)
	assert.Equal(suite.T(), 3, team.Employees[1].Weeks[0].WorkDays)
	assert.Equal(suite.T(), "3.0", team.Employees[1].Weeks[0].Available)
	assert.Equal(suite.T(), "0.0", team.Employees[1].Weeks[0].Allocated)
}

func TestCapacityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CapacityServiceTestSuite))
}
