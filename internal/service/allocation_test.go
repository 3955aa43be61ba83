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

type AllocationServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repos   *snapshotRepos
	service *service.AllocationService
	ctx     context.Context

	alice    *models.Employee
	existing models.Allocation
}

func (suite *AllocationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repos = newSnapshotRepos(suite.ctrl)
	suite.service = service.NewAllocationService(suite.repos.allocations, suite.repos.store, service.NewValidator())
	suite.ctx = context.Background()

	suite.alice = newEmployee("Alice")
	suite.existing = miscAllocation(suite.alice.ID, "Platform rebuild", "2024-03-04", "2024-03-29", "5")
}

func (suite *AllocationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AllocationServiceTestSuite) request(start, end, dpw string) *service.AllocationRequest {
	return &service.AllocationRequest{
		EmployeeID:  suite.alice.ID,
		Type:        models.AllocationTypeSLA,
		Title:       "Support rota",
		StartDate:   start,
		EndDate:     end,
		DaysPerWeek: days(dpw),
	}
}

func (suite *AllocationServiceTestSuite) expectNeighbours(allocations []models.Allocation, leave []models.AnnualLeave) {
	suite.repos.expectSnapshot(1)
	suite.repos.employees.EXPECT().GetByID(suite.alice.ID).Return(suite.alice, nil)
	suite.repos.allocations.EXPECT().
		FindOverlapping(suite.alice.ID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(allocations, nil)
	suite.repos.leave.EXPECT().
		FindOverlapping(suite.alice.ID, gomock.Any(), gomock.Any(), nil).
		Return(leave, nil)
}

func (suite *AllocationServiceTestSuite) TestCreate_OverlapExceedingWorkDays() {
	suite.expectNeighbours([]models.Allocation{suite.existing}, nil)
	suite.repos.allocations.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.Allocation) error {
		a.ID = uuid.New()
		return nil
	})

	resp, err := suite.service.Create(suite.ctx, suite.request("2024-03-11", "2024-03-15", "2"))

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp.Warnings, 1)
	w := resp.Warnings[0]
	assert.Equal(suite.T(), capacity.WarningAllocationConflict, w.Type)
	require.NotNil(suite.T(), w.ConflictingID)
	assert.Equal(suite.T(), suite.existing.ID, *w.ConflictingID)
	assert.Equal(suite.T(), "7.0", w.CombinedLoad)
	assert.Equal(suite.T(), 5, w.WorkDays)
	assert.Equal(suite.T(), "2024-03-11", w.StartDate)
	assert.Equal(suite.T(), "2024-03-15", w.EndDate)

	assert.Equal(suite.T(), "2.0", resp.Allocation.DaysPerWeek)
	assert.Equal(suite.T(), models.AllocationTypeSLA, resp.Allocation.Type)
	assert.Equal(suite.T(), "Support rota", resp.Allocation.Label)
}

func (suite *AllocationServiceTestSuite) TestCreate_NoOverlapReturnsEmptyWarnings() {
	suite.expectNeighbours(nil, nil)
	suite.repos.allocations.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Create(suite.ctx, suite.request("2024-04-01", "2024-04-05", "2"))

	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp.Warnings)
	assert.Empty(suite.T(), resp.Warnings)
}

func (suite *AllocationServiceTestSuite) TestCreate_LeaveOverlap() {
	leave := models.AnnualLeave{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		EmployeeID: suite.alice.ID,
		StartDate:  date("2024-03-11"),
		EndDate:    date("2024-03-12"),
		DaysCount:  2,
	}
	suite.expectNeighbours(nil, []models.AnnualLeave{leave})
	suite.repos.allocations.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Create(suite.ctx, suite.request("2024-03-11", "2024-03-15", "1"))

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp.Warnings, 1)
	assert.Equal(suite.T(), capacity.WarningLeaveConflict, resp.Warnings[0].Type)
	assert.Equal(suite.T(), leave.ID, *resp.Warnings[0].ConflictingID)
}

func (suite *AllocationServiceTestSuite) TestCreate_AccumulatedWeeklyLoad() {
	first := miscAllocation(suite.alice.ID, "Hiring", "2024-03-11", "2024-03-15", "2")
	second := miscAllocation(suite.alice.ID, "Training", "2024-03-11", "2024-03-15", "2")
	suite.expectNeighbours([]models.Allocation{first, second}, nil)
	suite.repos.allocations.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Create(suite.ctx, suite.request("2024-03-11", "2024-03-15", "2"))

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp.Warnings, 1)
	assert.Equal(suite.T(), capacity.WarningCapacityExceeded, resp.Warnings[0].Type)
	assert.Equal(suite.T(), "6.0", resp.Warnings[0].CombinedLoad)
	assert.Nil(suite.T(), resp.Warnings[0].ConflictingID)
}

func (suite *AllocationServiceTestSuite) TestCreate_ProjectAllocation() {
	project := &models.Project{
		SoftDeleteModel: models.SoftDeleteModel{BaseModel: models.BaseModel{ID: uuid.New()}},
		Name:            "Apollo",
	}
	suite.repos.expectSnapshot(1)
	suite.repos.employees.EXPECT().GetByID(suite.alice.ID).Return(suite.alice, nil)
	suite.repos.projects.EXPECT().GetByID(project.ID).Return(project, nil)
	suite.repos.allocations.EXPECT().FindOverlapping(suite.alice.ID, gomock.Any(), gomock.Any(), nil).Return(nil, nil)
	suite.repos.leave.EXPECT().FindOverlapping(suite.alice.ID, gomock.Any(), gomock.Any(), nil).Return(nil, nil)
	suite.repos.allocations.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.Allocation) error {
		assert.Equal(suite.T(), project.ID, *a.ProjectID)
		assert.Empty(suite.T(), a.Title)
		return nil
	})

	req := &service.AllocationRequest{
		EmployeeID:  suite.alice.ID,
		Type:        models.AllocationTypeProject,
		ProjectID:   &project.ID,
		Title:       "ignored",
		StartDate:   "2024-03-11",
		EndDate:     "2024-03-11",
		DaysPerWeek: days("0.5"),
	}
	resp, err := suite.service.Create(suite.ctx, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Apollo", resp.Allocation.Label)
	assert.Equal(suite.T(), "0.5", resp.Allocation.DaysPerWeek)
	assert.Equal(suite.T(), resp.Allocation.StartDate, resp.Allocation.EndDate)
}

func (suite *AllocationServiceTestSuite) TestCreate_RoundsDaysPerWeek() {
	suite.expectNeighbours(nil, nil)
	suite.repos.allocations.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Create(suite.ctx, suite.request("2024-04-01", "2024-04-05", "2.46"))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2.5", resp.Allocation.DaysPerWeek)
}

func (suite *AllocationServiceTestSuite) TestCreate_RejectedBeforeStoreAccess() {
	testCases := []struct {
		name   string
		mutate func(req *service.AllocationRequest)
		field  string
	}{
		{
			name:   "end before start",
			mutate: func(req *service.AllocationRequest) { req.EndDate = "2024-03-10" },
			field:  "end_date",
		},
		{
			name:   "malformed date",
			mutate: func(req *service.AllocationRequest) { req.StartDate = "11/03/2024" },
			field:  "start_date",
		},
		{
			name:   "malformed end date",
			mutate: func(req *service.AllocationRequest) { req.EndDate = "2024-02-30" },
			field:  "end_date",
		},
		{
			name: "project type without project",
			mutate: func(req *service.AllocationRequest) {
				req.Type = models.AllocationTypeProject
			},
			field: "project_id",
		},
		{
			name:   "misc type without title",
			mutate: func(req *service.AllocationRequest) { req.Type = models.AllocationTypeMisc; req.Title = "" },
			field:  "title",
		},
		{
			name:   "unknown type",
			mutate: func(req *service.AllocationRequest) { req.Type = "holiday" },
			field:  "type",
		},
		{
			name:   "days per week above seven",
			mutate: func(req *service.AllocationRequest) { req.DaysPerWeek = days("7.5") },
			field:  "days_per_week",
		},
		{
			name:   "negative days per week",
			mutate: func(req *service.AllocationRequest) { req.DaysPerWeek = days("-1") },
			field:  "days_per_week",
		},
		{
			name:   "days per week just above seven",
			mutate: func(req *service.AllocationRequest) { req.DaysPerWeek = days("7.04") },
			field:  "days_per_week",
		},
		{
			name:   "days per week just below zero",
			mutate: func(req *service.AllocationRequest) { req.DaysPerWeek = days("-0.04") },
			field:  "days_per_week",
		},
		{
			name:   "missing days per week",
			mutate: func(req *service.AllocationRequest) { req.DaysPerWeek = nil },
			field:  "days_per_week",
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			req := suite.request("2024-03-11", "2024-03-15", "2")
			tc.mutate(req)

			resp, err := suite.service.Create(suite.ctx, req)

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.True(t, apperrors.IsValidation(err))
			assert.Contains(t, apperrors.FieldErrors(err), tc.field)
		})
	}
}

func (suite *AllocationServiceTestSuite) TestCreate_EmployeeNotFound() {
	suite.repos.expectSnapshot(1)
	suite.repos.employees.EXPECT().GetByID(suite.alice.ID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.Create(suite.ctx, suite.request("2024-03-11", "2024-03-15", "2"))

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrEmployeeNotFound))
}

func (suite *AllocationServiceTestSuite) TestCreate_ProjectNotFound() {
	projectID := uuid.New()
	suite.repos.expectSnapshot(1)
	suite.repos.employees.EXPECT().GetByID(suite.alice.ID).Return(suite.alice, nil)
	suite.repos.projects.EXPECT().GetByID(projectID).Return(nil, gorm.ErrRecordNotFound)

	req := suite.request("2024-03-11", "2024-03-15", "2")
	req.Type = models.AllocationTypeProject
	req.ProjectID = &projectID

	resp, err := suite.service.Create(suite.ctx, req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrProjectNotFound))
}

func (suite *AllocationServiceTestSuite) TestCreate_StoreFailure() {
	suite.expectNeighbours(nil, nil)
	suite.repos.allocations.EXPECT().Create(gomock.Any()).Return(errors.New("connection reset"))

	resp, err := suite.service.Create(suite.ctx, suite.request("2024-04-01", "2024-04-05", "2"))

	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "failed to create allocation")
}

func (suite *AllocationServiceTestSuite) TestUpdate_ExcludesOwnRecord() {
	id := suite.existing.ID
	suite.repos.allocations.EXPECT().GetByID(id).Return(&suite.existing, nil)
	suite.repos.expectSnapshot(1)
	suite.repos.employees.EXPECT().GetByID(suite.alice.ID).Return(suite.alice, nil)
	suite.repos.allocations.EXPECT().
		FindOverlapping(suite.alice.ID, gomock.Any(), gomock.Any(), gomock.Eq(&id)).
		Return([]models.Allocation{suite.existing}, nil)
	suite.repos.leave.EXPECT().FindOverlapping(suite.alice.ID, gomock.Any(), gomock.Any(), nil).Return(nil, nil)
	suite.repos.allocations.EXPECT().Update(gomock.Any()).DoAndReturn(func(a *models.Allocation) error {
		assert.Equal(suite.T(), id, a.ID)
		return nil
	})

	resp, err := suite.service.Update(suite.ctx, id, suite.request("2024-03-04", "2024-03-29", "4"))

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), resp.Warnings)
	assert.Equal(suite.T(), id, resp.Allocation.ID)
	assert.Equal(suite.T(), "4.0", resp.Allocation.DaysPerWeek)
}

func (suite *AllocationServiceTestSuite) TestUpdate_NotFound() {
	id := uuid.New()
	suite.repos.allocations.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.Update(suite.ctx, id, suite.request("2024-03-11", "2024-03-15", "2"))

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrAllocationNotFound))
}

func (suite *AllocationServiceTestSuite) TestValidate_DoesNotPersist() {
	suite.expectNeighbours([]models.Allocation{suite.existing}, nil)

	resp, err := suite.service.Validate(suite.ctx, suite.request("2024-03-11", "2024-03-15", "2"), nil)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp.Warnings, 1)
	assert.Equal(suite.T(), capacity.WarningAllocationConflict, resp.Warnings[0].Type)
}

func (suite *AllocationServiceTestSuite) TestValidate_RejectsInvertedRange() {
	resp, err := suite.service.Validate(suite.ctx, suite.request("2024-03-15", "2024-03-11", "2"), nil)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrInvalidDateRange))
}

func (suite *AllocationServiceTestSuite) TestGetAll_ByEmployee() {
	suite.repos.allocations.EXPECT().GetByEmployeeID(suite.alice.ID).Return([]models.Allocation{suite.existing}, nil)

	resp, err := suite.service.GetAll(&suite.alice.ID)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp, 1)
	assert.Equal(suite.T(), "2024-03-04", resp[0].StartDate)
	assert.Equal(suite.T(), "2024-03-29", resp[0].EndDate)
	assert.Equal(suite.T(), "5.0", resp[0].DaysPerWeek)
}

func (suite *AllocationServiceTestSuite) TestDelete() {
	suite.repos.allocations.EXPECT().GetByID(suite.existing.ID).Return(&suite.existing, nil)
	suite.repos.allocations.EXPECT().Delete(suite.existing.ID).Return(nil)

	assert.NoError(suite.T(), suite.service.Delete(suite.existing.ID))
}

func (suite *AllocationServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	suite.repos.allocations.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.service.Delete(id)

	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func TestAllocationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AllocationServiceTestSuite))
}
