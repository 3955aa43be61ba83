//go:build integration
// +build integration

package repository

import (
	"testing"

	"team-capacity-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateDuplicateEmail tests the unique email index
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	first := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(first))

	second := suite.factories.User.Create()
	second.Email = first.Email

	suite.Error(suite.repo.Create(second))
}

// TestGetByEmailIgnoresCase tests email lookup is case-insensitive
func (suite *UserRepositoryTestSuite) TestGetByEmailIgnoresCase() {
	user := suite.factories.User.Create()
	user.Email = "Ada.Lovelace@test.com"
	suite.Require().NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByEmail("ada.lovelace@TEST.com")
	suite.NoError(err)
	suite.Equal(user.ID, found.ID)
}

// Run the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
