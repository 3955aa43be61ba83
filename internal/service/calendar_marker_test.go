package service_test

import (
	"errors"
	"testing"
	"time"

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

type CalendarMarkerServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRepo         *mocks.MockCalendarMarkerRepositoryInterface
	mockEmployeeRepo *mocks.MockEmployeeRepositoryInterface
	service          *service.CalendarMarkerService
}

func (suite *CalendarMarkerServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockCalendarMarkerRepositoryInterface(suite.ctrl)
	suite.mockEmployeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.service = service.NewCalendarMarkerService(suite.mockRepo, suite.mockEmployeeRepo, service.NewValidator())
	suite.service.SetClock(func() time.Time { return time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC) })
}

func (suite *CalendarMarkerServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CalendarMarkerServiceTestSuite) TestCreate_SystemMarkerDefaultsToCustom() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Create(&service.CreateCalendarMarkerRequest{Date: "2024-03-29", Title: "Good Friday"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.MarkerTypeCustom, resp.Type)
	assert.Nil(suite.T(), resp.CreatorID)
	assert.Equal(suite.T(), "2024-03-29", resp.Date)
}

func (suite *CalendarMarkerServiceTestSuite) TestCreate_UnknownCreator() {
	creator := uuid.New()
	suite.mockEmployeeRepo.EXPECT().GetByID(creator).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.Create(&service.CreateCalendarMarkerRequest{
		CreatorID: &creator,
		Date:      "2024-03-29",
		Title:     "Launch",
		Type:      models.MarkerTypeMilestone,
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrEmployeeNotFound))
}

func (suite *CalendarMarkerServiceTestSuite) TestCreate_InvalidType() {
	resp, err := suite.service.Create(&service.CreateCalendarMarkerRequest{Date: "2024-03-29", Title: "Launch", Type: "holiday"})

	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), apperrors.FieldErrors(err), "type")
}

func (suite *CalendarMarkerServiceTestSuite) TestGetInRange_DefaultWindow() {
	suite.mockRepo.EXPECT().GetInRange(date("2024-04-01"), date("2024-05-05")).Return([]models.CalendarMarker{}, nil)

	resp, err := suite.service.GetInRange("", "")

	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Empty(suite.T(), resp)
}

func (suite *CalendarMarkerServiceTestSuite) TestUpdate() {
	marker := &models.CalendarMarker{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Date:      date("2024-03-29"),
		Title:     "Launch",
		Type:      models.MarkerTypeMilestone,
	}
	suite.mockRepo.EXPECT().GetByID(marker.ID).Return(marker, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	newDate := "2024-04-05"
	resp, err := suite.service.Update(marker.ID, &service.UpdateCalendarMarkerRequest{Date: &newDate})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2024-04-05", resp.Date)
	assert.Equal(suite.T(), "Launch", resp.Title)
}

func (suite *CalendarMarkerServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	assert.True(suite.T(), errors.Is(suite.service.Delete(id), apperrors.ErrMarkerNotFound))
}

func TestCalendarMarkerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CalendarMarkerServiceTestSuite))
}
