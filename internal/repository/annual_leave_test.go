//go:build integration
// +build integration

package repository

import (
	"testing"

	"team-capacity-backend/internal/database/models"
	"team-capacity-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// AnnualLeaveRepositoryTestSuite tests the AnnualLeaveRepository
type AnnualLeaveRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AnnualLeaveRepository
	factories     *testutils.FactorySet
	employee      *models.Employee
}

// SetupSuite runs before all tests in the suite
func (suite *AnnualLeaveRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAnnualLeaveRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AnnualLeaveRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AnnualLeaveRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.employee = suite.factories.Employee.Create()
	suite.Require().NoError(NewEmployeeRepository(suite.baseTestSuite.DB).Create(suite.employee))
}

// TearDownTest runs after each test
func (suite *AnnualLeaveRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestDaysCountIsStoredAsGiven tests an overridden count is not recomputed
func (suite *AnnualLeaveRepositoryTestSuite) TestDaysCountIsStoredAsGiven() {
	leave := suite.factories.AnnualLeave.WithRange(suite.employee.ID, "2024-03-11", "2024-03-15")
	leave.DaysCount = 3
	suite.Require().NoError(suite.repo.Create(leave))

	leave.EndDate = testutils.Date("2024-03-19")
	suite.Require().NoError(suite.repo.Update(leave))

	found, err := suite.repo.GetByID(leave.ID)
	suite.NoError(err)
	suite.Equal(3, found.DaysCount)
	suite.Equal("2024-03-19", found.EndDate.Format("2006-01-02"))
}

// TestFindOverlapping tests leave range matching for one employee
func (suite *AnnualLeaveRepositoryTestSuite) TestFindOverlapping() {
	first := suite.factories.AnnualLeave.WithRange(suite.employee.ID, "2024-03-11", "2024-03-12")
	second := suite.factories.AnnualLeave.WithRange(suite.employee.ID, "2024-05-01", "2024-05-03")
	suite.Require().NoError(suite.repo.Create(first))
	suite.Require().NoError(suite.repo.Create(second))

	found, err := suite.repo.FindOverlapping(suite.employee.ID, testutils.Date("2024-03-04"), testutils.Date("2024-03-29"), nil)
	suite.NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(first.ID, found[0].ID)

	found, err = suite.repo.FindOverlapping(suite.employee.ID, testutils.Date("2024-03-04"), testutils.Date("2024-03-29"), &first.ID)
	suite.NoError(err)
	suite.Empty(found)

	all, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Len(all, 2)
}

// TestDelete tests leave is hard-deleted
func (suite *AnnualLeaveRepositoryTestSuite) TestDelete() {
	leave := suite.factories.AnnualLeave.WithRange(suite.employee.ID, "2024-03-11", "2024-03-12")
	suite.Require().NoError(suite.repo.Create(leave))

	suite.NoError(suite.repo.Delete(leave.ID))

	remaining, err := suite.repo.GetByEmployeeID(suite.employee.ID)
	suite.NoError(err)
	suite.Empty(remaining)
}

// Run the test suite
func TestAnnualLeaveRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AnnualLeaveRepositoryTestSuite))
}
