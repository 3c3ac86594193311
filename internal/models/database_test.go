package models_test

import (
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
)

// The query callback rewrites gorm's record-not-found error into a
// user-facing one that names the resource.
func (suite *TestSuiteStandard) TestNotFoundError() {
	err := models.DB.First(&models.Account{}, "id = ?", uuid.New()).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "account")
}

// Database errors on a closed connection are replaced with a general error
// so no internals leak to users.
func (suite *TestSuiteStandard) TestGeneralError() {
	sqlDB, err := models.DB.DB()
	suite.Require().Nil(err)
	suite.Require().Nil(sqlDB.Close())

	err = models.DB.First(&models.Account{}, "id = ?", uuid.New()).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
