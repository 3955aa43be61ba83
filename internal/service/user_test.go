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

type UserServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRepo         *mocks.MockUserRepositoryInterface
	mockEmployeeRepo *mocks.MockEmployeeRepositoryInterface
	service          *service.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockEmployeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.service = service.NewUserService(suite.mockRepo, suite.mockEmployeeRepo, service.NewValidator())
}

func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserServiceTestSuite) TestCreate_DefaultsToMember() {
	suite.mockRepo.EXPECT().GetByEmail("mallory@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Create(&service.CreateUserRequest{Name: "Mallory", Email: "Mallory@Example.com"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.UserRoleMember, resp.Role)
	assert.Equal(suite.T(), "mallory@example.com", resp.Email)
}

func (suite *UserServiceTestSuite) TestCreate_DuplicateEmail() {
	existing := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "nia@example.com"}
	suite.mockRepo.EXPECT().GetByEmail("nia@example.com").Return(existing, nil)

	resp, err := suite.service.Create(&service.CreateUserRequest{Name: "Nia", Email: "nia@example.com"})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

func (suite *UserServiceTestSuite) TestCreate_GuestLinkedToUnknownEmployee() {
	employeeID := uuid.New()
	suite.mockRepo.EXPECT().GetByEmail("oscar@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockEmployeeRepo.EXPECT().GetByID(employeeID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.Create(&service.CreateUserRequest{
		Name:       "Oscar",
		Email:      "oscar@example.com",
		Role:       models.UserRoleGuest,
		EmployeeID: &employeeID,
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrEmployeeNotFound))
}

func (suite *UserServiceTestSuite) TestUpdate_KeepsOwnEmail() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Peggy", Email: "peggy@example.com", Role: models.UserRoleMember}
	suite.mockRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	role := models.UserRoleAdmin
	email := "peggy@example.com"
	resp, err := suite.service.Update(user.ID, &service.UpdateUserRequest{Role: &role, Email: &email})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.UserRoleAdmin, resp.Role)
}

func (suite *UserServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	assert.True(suite.T(), errors.Is(suite.service.Delete(id), apperrors.ErrUserNotFound))
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
