//go:build integration
// +build integration

package repository

import (
	"testing"

	"team-capacity-backend/internal/database/models"
	"team-capacity-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// EmployeeRepositoryTestSuite tests the EmployeeRepository
type EmployeeRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *EmployeeRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *EmployeeRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewEmployeeRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *EmployeeRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *EmployeeRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *EmployeeRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGet tests the work-day pattern survives a round trip
func (suite *EmployeeRepositoryTestSuite) TestCreateAndGet() {
	employee := suite.factories.Employee.WithWorkDays(1, 3, 5)

	err := suite.repo.Create(employee)
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, employee.ID)

	found, err := suite.repo.GetByID(employee.ID)
	suite.NoError(err)
	suite.Equal(models.WorkDays{1, 3, 5}, found.WorkDays)
	suite.Equal(25, found.AnnualLeaveDefault)
	suite.True(found.IsVisible)
}

// TestGetByIDNotFound tests retrieving a non-existent employee
func (suite *EmployeeRepositoryTestSuite) TestGetByIDNotFound() {
	found, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Nil(found)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetVisible tests hidden and guest-linked employees are excluded
func (suite *EmployeeRepositoryTestSuite) TestGetVisible() {
	zoe := suite.factories.Employee.WithName("Zoe")
	adam := suite.factories.Employee.WithName("Adam")
	hidden := suite.factories.Employee.WithName("Hidden")
	hidden.IsVisible = false
	guest := suite.factories.Employee.WithName("Guest")
	for _, e := range []*models.Employee{zoe, adam, hidden, guest} {
		suite.Require().NoError(suite.repo.Create(e))
	}

	guestUser := suite.factories.User.WithRole(models.UserRoleGuest)
	guestUser.EmployeeID = &guest.ID
	suite.Require().NoError(suite.userRepo.Create(guestUser))

	memberUser := suite.factories.User.Create()
	memberUser.EmployeeID = &adam.ID
	suite.Require().NoError(suite.userRepo.Create(memberUser))

	visible, err := suite.repo.GetVisible()
	suite.NoError(err)
	suite.Require().Len(visible, 2)
	suite.Equal("Adam", visible[0].Name)
	suite.Equal("Zoe", visible[1].Name)
}

// TestSoftDelete tests deleted employees disappear from reads but keep allocations
func (suite *EmployeeRepositoryTestSuite) TestSoftDelete() {
	employee := suite.factories.Employee.Create()
	suite.Require().NoError(suite.repo.Create(employee))

	allocRepo := NewAllocationRepository(suite.baseTestSuite.DB)
	allocation := suite.factories.Allocation.WithRange(employee.ID, "2024-03-04", "2024-03-08", "3")
	suite.Require().NoError(allocRepo.Create(allocation))

	suite.NoError(suite.repo.Delete(employee.ID))

	_, err := suite.repo.GetByID(employee.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	var count int64
	suite.baseTestSuite.DB.Unscoped().Model(&models.Employee{}).Where("id = ?", employee.ID).Count(&count)
	suite.Equal(int64(1), count)

	kept, err := allocRepo.GetByEmployeeID(employee.ID)
	suite.NoError(err)
	suite.Len(kept, 1)
}

// TestUpdate tests updating an employee
func (suite *EmployeeRepositoryTestSuite) TestUpdate() {
	employee := suite.factories.Employee.Create()
	suite.Require().NoError(suite.repo.Create(employee))

	employee.Name = "Renamed"
	employee.WorkDays = models.WorkDays{0, 6}
	suite.NoError(suite.repo.Update(employee))

	found, err := suite.repo.GetByID(employee.ID)
	suite.NoError(err)
	suite.Equal("Renamed", found.Name)
	suite.Equal(models.WorkDays{0, 6}, found.WorkDays)
}

// Run the test suite
func TestEmployeeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeRepositoryTestSuite))
}
