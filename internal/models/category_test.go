package models_test

import (
	"github.com/pocketledger/backend/internal/models"
)

func (suite *TestSuiteStandard) TestSeedCategories() {
	err := models.SeedCategories(models.DB)
	suite.Require().Nil(err)

	categories, err := models.Categories(models.DB)
	suite.Require().Nil(err)
	suite.Assert().NotEmpty(categories)

	// Seeding again must not duplicate the catalog
	err = models.SeedCategories(models.DB)
	suite.Require().Nil(err)

	again, err := models.Categories(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Len(again, len(categories))
}

func (suite *TestSuiteStandard) TestCategoriesOrdered() {
	err := models.SeedCategories(models.DB)
	suite.Require().Nil(err)

	categories, err := models.Categories(models.DB)
	suite.Require().Nil(err)

	for i := 1; i < len(categories); i++ {
		suite.Assert().Less(categories[i-1].Name, categories[i].Name, "categories must be ordered by name")
	}
}

func (suite *TestSuiteStandard) TestCategoryNameUnique() {
	err := models.DB.Create(&models.Category{Name: "food", Label: "Food"}).Error
	suite.Require().Nil(err)

	err = models.DB.Create(&models.Category{Name: "food", Label: "Also food"}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)
}
