package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"team-capacity-backend/internal/api/handlers"
	"team-capacity-backend/internal/capacity"
	"team-capacity-backend/internal/database/models"
	apperrors "team-capacity-backend/internal/errors"
	"team-capacity-backend/internal/mocks"
	"team-capacity-backend/internal/service"
	"team-capacity-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AllocationHandlerTestSuite defines the test suite for AllocationHandler
type AllocationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAllocationServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *AllocationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAllocationServiceInterface(suite.ctrl)
	suite.http = testutils.SetupHTTPTest()

	handler := handlers.NewAllocationHandler(suite.mockService)
	suite.http.Router.POST("/allocations", handler.CreateAllocation)
	suite.http.Router.POST("/allocations/validate", handler.ValidateAllocation)
	suite.http.Router.GET("/allocations", handler.ListAllocations)
	suite.http.Router.GET("/allocations/:id", handler.GetAllocation)
	suite.http.Router.PUT("/allocations/:id", handler.UpdateAllocation)
	suite.http.Router.DELETE("/allocations/:id", handler.DeleteAllocation)
}

func (suite *AllocationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func allocationBody(employeeID uuid.UUID) map[string]interface{} {
	return map[string]interface{}{
		"employee_id":   employeeID,
		"type":          "sla",
		"title":         "Support rota",
		"start_date":    "2024-03-11",
		"end_date":      "2024-03-15",
		"days_per_week": 2,
	}
}

func (suite *AllocationHandlerTestSuite) TestCreateAllocation_ReturnsWarnings() {
	employeeID := uuid.New()
	conflicting := uuid.New()
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.AllocationRequest) (*service.AllocationWriteResponse, error) {
			assert.Equal(suite.T(), employeeID, req.EmployeeID)
			assert.Equal(suite.T(), "2", req.DaysPerWeek.String())
			return &service.AllocationWriteResponse{
				Allocation: service.AllocationResponse{ID: uuid.New(), EmployeeID: employeeID, Type: models.AllocationTypeSLA, DaysPerWeek: "2.0"},
				Warnings: []service.WarningResponse{{
					Type:          capacity.WarningAllocationConflict,
					Message:       "over capacity",
					ConflictingID: &conflicting,
					CombinedLoad:  "7.0",
					WorkDays:      5,
				}},
			}, nil
		})

	w := suite.http.MakeRequest(http.MethodPost, "/allocations", allocationBody(employeeID))

	var resp service.AllocationWriteResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &resp)
	require.Len(suite.T(), resp.Warnings, 1)
	assert.Equal(suite.T(), capacity.WarningAllocationConflict, resp.Warnings[0].Type)
	assert.Equal(suite.T(), "7.0", resp.Warnings[0].CombinedLoad)
	assert.Equal(suite.T(), "2.0", resp.Allocation.DaysPerWeek)
}

func (suite *AllocationHandlerTestSuite) TestCreateAllocation_EmptyWarningsSerialiseAsArray() {
	suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&service.AllocationWriteResponse{
		Warnings: []service.WarningResponse{},
	}, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/allocations", allocationBody(uuid.New()))

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"warnings":[]`)
}

func (suite *AllocationHandlerTestSuite) TestCreateAllocation_ErrorMapping() {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "inverted range", err: apperrors.ErrInvalidDateRange, status: http.StatusBadRequest},
		{name: "missing discriminant", err: apperrors.ValidationErrors{{Field: "project_id", Message: "is required when type is project"}}, status: http.StatusBadRequest},
		{name: "unknown employee", err: apperrors.ErrEmployeeNotFound, status: http.StatusNotFound},
		{name: "unknown project", err: fmt.Errorf("lookup: %w", apperrors.ErrProjectNotFound), status: http.StatusNotFound},
		{name: "store failure", err: errors.New("connection refused"), status: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			w := suite.http.MakeRequest(http.MethodPost, "/allocations", allocationBody(uuid.New()))

			testutils.AssertErrorResponse(t, w, tc.status, "")
		})
	}
}

func (suite *AllocationHandlerTestSuite) TestCreateAllocation_FieldErrors() {
	suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInvalidDateRange)

	w := suite.http.MakeRequest(http.MethodPost, "/allocations", allocationBody(uuid.New()))

	testutils.AssertFieldError(suite.T(), w, "end_date")
}

func (suite *AllocationHandlerTestSuite) TestCreateAllocation_InternalErrorIsNotLeaked() {
	suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("pq: password authentication failed"))

	w := suite.http.MakeRequest(http.MethodPost, "/allocations", allocationBody(uuid.New()))

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.NotContains(suite.T(), w.Body.String(), "password")
}

func (suite *AllocationHandlerTestSuite) TestCreateAllocation_InvalidJSON() {
	w := suite.http.MakeRequest(http.MethodPost, "/allocations", "not an object")

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid request body")
}

func (suite *AllocationHandlerTestSuite) TestValidateAllocation_WithExcludeID() {
	exclude := uuid.New()
	suite.mockService.EXPECT().
		Validate(gomock.Any(), gomock.Any(), gomock.Eq(&exclude)).
		Return(&service.ValidationResponse{Warnings: []service.WarningResponse{}}, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/allocations/validate?exclude_id="+exclude.String(), allocationBody(uuid.New()))

	var resp service.ValidationResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	assert.Empty(suite.T(), resp.Warnings)
}

func (suite *AllocationHandlerTestSuite) TestValidateAllocation_BadExcludeID() {
	w := suite.http.MakeRequest(http.MethodPost, "/allocations/validate?exclude_id=nope", allocationBody(uuid.New()))

	testutils.AssertFieldError(suite.T(), w, "exclude_id")
}

func (suite *AllocationHandlerTestSuite) TestListAllocations_ByEmployee() {
	employeeID := uuid.New()
	suite.mockService.EXPECT().GetAll(gomock.Eq(&employeeID)).Return([]service.AllocationResponse{{ID: uuid.New()}}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/allocations?employee_id="+employeeID.String(), nil)

	var resp []service.AllocationResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	assert.Len(suite.T(), resp, 1)
}

func (suite *AllocationHandlerTestSuite) TestGetAllocation_InvalidUUID() {
	w := suite.http.MakeRequest(http.MethodGet, "/allocations/invalid-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid allocation ID")
}

func (suite *AllocationHandlerTestSuite) TestUpdateAllocation() {
	id := uuid.New()
	suite.mockService.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(&service.AllocationWriteResponse{
		Allocation: service.AllocationResponse{ID: id},
		Warnings:   []service.WarningResponse{},
	}, nil)

	w := suite.http.MakeRequest(http.MethodPut, "/allocations/"+id.String(), allocationBody(uuid.New()))

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *AllocationHandlerTestSuite) TestDeleteAllocation() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(id).Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/allocations/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *AllocationHandlerTestSuite) TestDeleteAllocation_NotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(id).Return(apperrors.ErrAllocationNotFound)

	w := suite.http.MakeRequest(http.MethodDelete, "/allocations/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "allocation")
}

func TestAllocationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AllocationHandlerTestSuite))
}
