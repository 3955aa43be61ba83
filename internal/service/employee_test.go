package service_test

import (
	"errors"
	"testing"

	"team-capacity-backend/internal/database/models"
	apperrors "team-capacity-backend/internal/errors"
	"team-capacity-backend/internal/mocks"
	"team-capacity-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockEmployeeRepositoryInterface
	mockLeaveRepo *mocks.MockAnnualLeaveRepositoryInterface
	service       *service.EmployeeService
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.mockLeaveRepo = mocks.NewMockAnnualLeaveRepositoryInterface(suite.ctrl)
	suite.service = service.NewEmployeeService(suite.mockRepo, suite.mockLeaveRepo, service.NewValidator(), 25)
}

func (suite *EmployeeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EmployeeServiceTestSuite) TestCreate_Defaults() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *models.Employee) error {
		assert.Equal(suite.T(), models.WorkDays{1, 2, 3, 4, 5}, e.WorkDays)
		assert.Equal(suite.T(), 25, e.AnnualLeaveDefault)
		assert.True(suite.T(), e.IsVisible)
		return nil
	})

	resp, err := suite.service.Create(&service.CreateEmployeeRequest{Name: "Grace"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Grace", resp.Name)
	assert.Equal(suite.T(), []int{1, 2, 3, 4, 5}, resp.WorkDays)
}

func (suite *EmployeeServiceTestSuite) TestCreate_SortsWorkDays() {
	hidden := false
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Create(&service.CreateEmployeeRequest{
		Name:      "Heidi",
		WorkDays:  []int{4, 2, 1},
		IsVisible: &hidden,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []int{1, 2, 4}, resp.WorkDays)
	assert.False(suite.T(), resp.IsVisible)
}

func (suite *EmployeeServiceTestSuite) TestCreate_Validation() {
	testCases := []struct {
		name  string
		req   *service.CreateEmployeeRequest
		field string
	}{
		{name: "missing name", req: &service.CreateEmployeeRequest{}, field: "name"},
		{name: "duplicate work days", req: &service.CreateEmployeeRequest{Name: "Ivan", WorkDays: []int{1, 1}}, field: "work_days"},
		{name: "work day out of range", req: &service.CreateEmployeeRequest{Name: "Ivan", WorkDays: []int{7}}, field: "work_days[0]"},
		{name: "bad email", req: &service.CreateEmployeeRequest{Name: "Ivan", Email: "ivan"}, field: "email"},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			resp, err := suite.service.Create(tc.req)

			assert.Nil(t, resp)
			assert.True(t, apperrors.IsValidation(err))
			assert.Contains(t, apperrors.FieldErrors(err), tc.field)
		})
	}
}

func (suite *EmployeeServiceTestSuite) TestUpdate_KeepsUnsetFields() {
	judy := newEmployee("Judy")
	judy.WorkDays = models.WorkDays{1, 3, 5}
	suite.mockRepo.EXPECT().GetByID(judy.ID).Return(judy, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	name := "Judith"
	resp, err := suite.service.Update(judy.ID, &service.UpdateEmployeeRequest{Name: &name})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Judith", resp.Name)
	assert.Equal(suite.T(), []int{1, 3, 5}, resp.WorkDays)
}

func (suite *EmployeeServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.GetByID(id)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrEmployeeNotFound))
}

func (suite *EmployeeServiceTestSuite) TestDelete() {
	kim := newEmployee("Kim")
	suite.mockRepo.EXPECT().GetByID(kim.ID).Return(kim, nil)
	suite.mockRepo.EXPECT().Delete(kim.ID).Return(nil)

	assert.NoError(suite.T(), suite.service.Delete(kim.ID))
}

func (suite *EmployeeServiceTestSuite) TestGetLeaveSummary() {
	leo := newEmployee("Leo")
	leo.AnnualLeaveDefault = 25
	suite.mockRepo.EXPECT().GetByID(leo.ID).Return(leo, nil)
	suite.mockLeaveRepo.EXPECT().GetByEmployeeID(leo.ID).Return([]models.AnnualLeave{
		{BaseModel: models.BaseModel{ID: uuid.New()}, EmployeeID: leo.ID, StartDate: date("2023-12-27"), EndDate: date("2024-01-02"), DaysCount: 4},
		{BaseModel: models.BaseModel{ID: uuid.New()}, EmployeeID: leo.ID, StartDate: date("2024-03-11"), EndDate: date("2024-03-15"), DaysCount: 5},
		{BaseModel: models.BaseModel{ID: uuid.New()}, EmployeeID: leo.ID, StartDate: date("2024-08-05"), EndDate: date("2024-08-06"), DaysCount: 2},
	}, nil)

	summary, err := suite.service.GetLeaveSummary(leo.ID, 2024)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 25, summary.Entitlement)
	assert.Equal(suite.T(), 7, summary.DaysTaken)
	assert.Equal(suite.T(), 18, summary.DaysRemaining)
	assert.Len(suite.T(), summary.Leave, 2)
}

func (suite *EmployeeServiceTestSuite) TestGetLeaveSummary_InvalidYear() {
	summary, err := suite.service.GetLeaveSummary(uuid.New(), 12)

	assert.Nil(suite.T(), summary)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
