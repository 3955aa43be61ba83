package service_test

import (
	"context"
	"errors"
	"testing"

	"team-capacity-backend/internal/capacity"
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

type AnnualLeaveServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repos   *snapshotRepos
	service *service.AnnualLeaveService
	ctx     context.Context
	bob     *models.Employee
}

func (suite *AnnualLeaveServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repos = newSnapshotRepos(suite.ctrl)
	suite.service = service.NewAnnualLeaveService(suite.repos.leave, suite.repos.store, service.NewValidator())
	suite.ctx = context.Background()
	suite.bob = newEmployee("Bob")
}

func (suite *AnnualLeaveServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AnnualLeaveServiceTestSuite) expectOverlaps(allocations []models.Allocation) {
	suite.repos.expectSnapshot(1)
	suite.repos.employees.EXPECT().GetByID(suite.bob.ID).Return(suite.bob, nil)
	suite.repos.allocations.EXPECT().
		FindOverlapping(suite.bob.ID, gomock.Any(), gomock.Any(), nil).
		Return(allocations, nil)
}

func (suite *AnnualLeaveServiceTestSuite) TestCreate_DerivesDaysCount() {
	suite.expectOverlaps(nil)
	suite.repos.leave.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Create(suite.ctx, &service.CreateAnnualLeaveRequest{
		EmployeeID: suite.bob.ID,
		StartDate:  "2024-03-11",
		EndDate:    "2024-03-12",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, resp.AnnualLeave.DaysCount)
	assert.NotNil(suite.T(), resp.Warnings)
	assert.Empty(suite.T(), resp.Warnings)
}

func (suite *AnnualLeaveServiceTestSuite) TestCreate_KeepsGivenDaysCount() {
	suite.expectOverlaps(nil)
	suite.repos.leave.EXPECT().Create(gomock.Any()).Return(nil)

	given := 5
	resp, err := suite.service.Create(suite.ctx, &service.CreateAnnualLeaveRequest{
		EmployeeID: suite.bob.ID,
		StartDate:  "2024-03-11",
		EndDate:    "2024-03-17",
		DaysCount:  &given,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 5, resp.AnnualLeave.DaysCount)
}

func (suite *AnnualLeaveServiceTestSuite) TestCreate_WarnsAboutAllocations() {
	booked := miscAllocation(suite.bob.ID, "Migration", "2024-03-04", "2024-03-29", "5")
	suite.expectOverlaps([]models.Allocation{booked})
	suite.repos.leave.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Create(suite.ctx, &service.CreateAnnualLeaveRequest{
		EmployeeID: suite.bob.ID,
		StartDate:  "2024-03-11",
		EndDate:    "2024-03-12",
	})

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp.Warnings, 1)
	assert.Equal(suite.T(), capacity.WarningLeaveConflict, resp.Warnings[0].Type)
	assert.Equal(suite.T(), booked.ID, *resp.Warnings[0].ConflictingID)
	assert.Contains(suite.T(), resp.Warnings[0].Message, "Migration")
}

func (suite *AnnualLeaveServiceTestSuite) TestCreate_InvalidRange() {
	resp, err := suite.service.Create(suite.ctx, &service.CreateAnnualLeaveRequest{
		EmployeeID: suite.bob.ID,
		StartDate:  "2024-03-12",
		EndDate:    "2024-03-11",
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrInvalidDateRange))
}

func (suite *AnnualLeaveServiceTestSuite) TestCreate_UnknownEmployee() {
	suite.repos.expectSnapshot(1)
	suite.repos.employees.EXPECT().GetByID(suite.bob.ID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.Create(suite.ctx, &service.CreateAnnualLeaveRequest{
		EmployeeID: suite.bob.ID,
		StartDate:  "2024-03-11",
		EndDate:    "2024-03-12",
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrEmployeeNotFound))
}

func (suite *AnnualLeaveServiceTestSuite) TestUpdate_DoesNotRederiveDaysCount() {
	stored := &models.AnnualLeave{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		EmployeeID: suite.bob.ID,
		StartDate:  date("2024-03-11"),
		EndDate:    date("2024-03-12"),
		DaysCount:  2,
	}
	suite.repos.leave.EXPECT().GetByID(stored.ID).Return(stored, nil)
	suite.expectOverlaps(nil)
	suite.repos.leave.EXPECT().Update(gomock.Any()).Return(nil)

	end := "2024-03-15"
	resp, err := suite.service.Update(suite.ctx, stored.ID, &service.UpdateAnnualLeaveRequest{EndDate: &end})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2024-03-11", resp.AnnualLeave.StartDate)
	assert.Equal(suite.T(), "2024-03-15", resp.AnnualLeave.EndDate)
	assert.Equal(suite.T(), 2, resp.AnnualLeave.DaysCount)
}

func (suite *AnnualLeaveServiceTestSuite) TestUpdate_RejectsInvertedRange() {
	stored := &models.AnnualLeave{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		EmployeeID: suite.bob.ID,
		StartDate:  date("2024-03-11"),
		EndDate:    date("2024-03-12"),
		DaysCount:  2,
	}
	suite.repos.leave.EXPECT().GetByID(stored.ID).Return(stored, nil)

	start := "2024-03-20"
	resp, err := suite.service.Update(suite.ctx, stored.ID, &service.UpdateAnnualLeaveRequest{StartDate: &start})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *AnnualLeaveServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	suite.repos.leave.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.service.Delete(id)

	assert.True(suite.T(), errors.Is(err, apperrors.ErrAnnualLeaveNotFound))
}

func (suite *AnnualLeaveServiceTestSuite) TestGetAll() {
	suite.repos.leave.EXPECT().GetAll().Return([]models.AnnualLeave{
		{BaseModel: models.BaseModel{ID: uuid.New()}, EmployeeID: suite.bob.ID, StartDate: date("2024-01-02"), EndDate: date("2024-01-05"), DaysCount: 4},
	}, nil)

	resp, err := suite.service.GetAll(nil)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp, 1)
	assert.Equal(suite.T(), "2024-01-02", resp[0].StartDate)
}

func TestAnnualLeaveServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnnualLeaveServiceTestSuite))
}
