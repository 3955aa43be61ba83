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

type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockProjectRepositoryInterface
	service  *service.ProjectService
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.service = service.NewProjectService(suite.mockRepo, service.NewValidator())
}

func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectServiceTestSuite) TestCreate_DefaultStatus() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Create(&service.CreateProjectRequest{Name: "Apollo", Color: "#3b82f6"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ProjectStatusUnconfirmed, resp.Status)
	assert.True(suite.T(), resp.IsVisible)
}

func (suite *ProjectServiceTestSuite) TestCreate_Validation() {
	testCases := []struct {
		name  string
		req   *service.CreateProjectRequest
		field string
	}{
		{name: "missing name", req: &service.CreateProjectRequest{Color: "#fff"}, field: "name"},
		{name: "bad color", req: &service.CreateProjectRequest{Name: "Apollo", Color: "blue"}, field: "color"},
		{name: "unknown status", req: &service.CreateProjectRequest{Name: "Apollo", Color: "#fff", Status: "archived"}, field: "status"},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			resp, err := suite.service.Create(tc.req)

			assert.Nil(t, resp)
			assert.Contains(t, apperrors.FieldErrors(err), tc.field)
		})
	}
}

func (suite *ProjectServiceTestSuite) TestUpdate_Status() {
	project := &models.Project{
		SoftDeleteModel: models.SoftDeleteModel{BaseModel: models.BaseModel{ID: uuid.New()}},
		Name:            "Apollo",
		Color:           "#3b82f6",
		Status:          models.ProjectStatusToDo,
		IsVisible:       true,
	}
	suite.mockRepo.EXPECT().GetByID(project.ID).Return(project, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	status := models.ProjectStatusInProgress
	resp, err := suite.service.Update(project.ID, &service.UpdateProjectRequest{Status: &status})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ProjectStatusInProgress, resp.Status)
	assert.Equal(suite.T(), "Apollo", resp.Name)
}

func (suite *ProjectServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.service.Delete(id)

	assert.True(suite.T(), errors.Is(err, apperrors.ErrProjectNotFound))
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
