//go:build integration
// +build integration

package repository

import (
	"testing"

	"team-capacity-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectRepositoryTestSuite tests the ProjectRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProjectRepository
	factories     *testutils.FactorySet
}

func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGetVisible tests hidden projects are left out and the rest come back by name
func (suite *ProjectRepositoryTestSuite) TestGetVisible() {
	beta := suite.factories.Project.WithName("Beta")
	alpha := suite.factories.Project.WithName("Alpha")
	hidden := suite.factories.Project.WithName("Archived")
	hidden.IsVisible = false
	suite.Require().NoError(suite.repo.Create(beta))
	suite.Require().NoError(suite.repo.Create(alpha))
	suite.Require().NoError(suite.repo.Create(hidden))

	visible, err := suite.repo.GetVisible()
	suite.NoError(err)
	suite.Require().Len(visible, 2)
	suite.Equal("Alpha", visible[0].Name)
	suite.Equal("Beta", visible[1].Name)

	all, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Len(all, 3)
}

// TestDeleteIsSoft tests a deleted project disappears from reads but keeps its row
func (suite *ProjectRepositoryTestSuite) TestDeleteIsSoft() {
	project := suite.factories.Project.Create()
	suite.Require().NoError(suite.repo.Create(project))

	suite.NoError(suite.repo.Delete(project.ID))

	_, err := suite.repo.GetByID(project.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Unscoped().Table("projects").Where("id = ?", project.ID).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
