package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestOptionsAccounts() {
	r := test.Request(suite.T(), http.MethodOptions, "/v1/accounts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsAccountDetail() {
	account := suite.createTestAccount(v1.AccountEditable{
		Name:             "Alex",
		Contact:          "+49151123456",
		MonthlyAllowance: decimal.NewFromInt(5000),
	})

	r := test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("/v1/accounts/%s", account.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsAccountDetailNotFound() {
	r := test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("/v1/accounts/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestOptionsAccountDetailInvalidUUID() {
	r := test.Request(suite.T(), http.MethodOptions, "/v1/accounts/definitely-not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// The carve-out is moved to savings at provisioning time, the rest
// becomes the spendable balance.
func (suite *TestSuiteStandard) TestCreateAccount() {
	response := suite.createTestAccount(v1.AccountEditable{
		Name:             "Alex",
		Contact:          "+49151123456",
		MonthlyAllowance: decimal.NewFromInt(5000),
		Note:             "Allowance is transferred on the 1st",
	})

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Alex", response.Data.Name)
	suite.Assert().Equal("+49151123456", response.Data.Contact)
	suite.Assert().Equal("Allowance is transferred on the 1st", response.Data.Note)
	suite.assertDecimalEqual(decimal.NewFromInt(5000), response.Data.MonthlyAllowance)
	suite.assertDecimalEqual(decimal.RequireFromString("4900"), response.Data.CurrentBalance)
	suite.assertDecimalEqual(decimal.RequireFromString("100"), response.Data.TotalSavings)
	suite.assertDecimalEqual(decimal.Zero, response.Data.TotalSpent)
}

func (suite *TestSuiteStandard) TestCreateAccountDuplicateContact() {
	_ = suite.createTestAccount(v1.AccountEditable{
		Name:             "Alex",
		Contact:          "+49151123456",
		MonthlyAllowance: decimal.NewFromInt(5000),
	})

	r := test.Request(suite.T(), http.MethodPost, "/v1/accounts", v1.AccountEditable{
		Name:             "Sam",
		Contact:          "+49151123456",
		MonthlyAllowance: decimal.NewFromInt(3000),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.ErrContactNotUnique.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestCreateAccountAllowanceBelowCarveOut() {
	r := test.Request(suite.T(), http.MethodPost, "/v1/accounts", v1.AccountEditable{
		Name:             "Alex",
		Contact:          "+49151123456",
		MonthlyAllowance: decimal.RequireFromString("99.99"),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestCreateAccountNoBody() {
	r := test.Request(suite.T(), http.MethodPost, "/v1/accounts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("the request body must not be empty", *response.Error)
}

func (suite *TestSuiteStandard) TestCreateAccountInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "/v1/accounts", `{ "name": "Broken`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateAccountMissingContact() {
	r := test.Request(suite.T(), http.MethodPost, "/v1/accounts", `{ "name": "Alex", "monthlyAllowance": "5000" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetAccounts() {
	_ = suite.createTestAccount(v1.AccountEditable{
		Name:             "Sam",
		Contact:          "+49151000001",
		MonthlyAllowance: decimal.NewFromInt(3000),
	})
	_ = suite.createTestAccount(v1.AccountEditable{
		Name:             "Alex",
		Contact:          "+49151000002",
		MonthlyAllowance: decimal.NewFromInt(5000),
	})

	r := test.Request(suite.T(), http.MethodGet, "/v1/accounts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AccountListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)

	// Accounts are sorted by name
	suite.Assert().Equal("Alex", response.Data[0].Name)
	suite.Assert().Equal("Sam", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestGetAccount() {
	account := suite.createTestAccount(v1.AccountEditable{
		Name:             "Alex",
		Contact:          "+49151123456",
		MonthlyAllowance: decimal.NewFromInt(5000),
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/accounts/%s", account.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(account.Data.ID, response.Data.ID)
	suite.Assert().Equal("Alex", response.Data.Name)
}

func (suite *TestSuiteStandard) TestGetAccountNotFound() {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/accounts/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetAccountInvalidUUID() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/accounts/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// Deleting an account removes its transactions and aggregates with it.
func (suite *TestSuiteStandard) TestDeleteAccount() {
	account := suite.createTestAccount(v1.AccountEditable{
		Name:             "Alex",
		Contact:          "+49151123456",
		MonthlyAllowance: decimal.NewFromInt(5000),
	})

	_ = suite.createTestExpense(v1.ExpenseEditable{
		AccountID: account.Data.ID,
		Category:  "food",
		Amount:    decimal.RequireFromString("150.00"),
	})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/accounts/%s", account.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/accounts/%s", account.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// No orphaned resources remain
	var transactions, aggregates int64
	suite.Require().Nil(models.DB.Unscoped().Model(&models.Transaction{}).Where("account_id = ?", account.Data.ID).Count(&transactions).Error)
	suite.Require().Nil(models.DB.Unscoped().Model(&models.CategoryAggregate{}).Where("account_id = ?", account.Data.ID).Count(&aggregates).Error)
	suite.Assert().Zero(transactions)
	suite.Assert().Zero(aggregates)
}

func (suite *TestSuiteStandard) TestDeleteAccountNotFound() {
	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/accounts/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// Reconciling rebuilds the aggregates from the transaction log.
func (suite *TestSuiteStandard) TestReconcileAccount() {
	account := suite.createTestAccount(v1.AccountEditable{
		Name:             "Alex",
		Contact:          "+49151123456",
		MonthlyAllowance: decimal.NewFromInt(5000),
	})

	_ = suite.createTestExpense(v1.ExpenseEditable{
		AccountID: account.Data.ID,
		Category:  "food",
		Amount:    decimal.RequireFromString("150.00"),
	})

	// Corrupt the aggregate to simulate drift
	err := models.DB.Model(&models.CategoryAggregate{}).
		Where("account_id = ? AND category = ?", account.Data.ID, "food").
		Updates(map[string]interface{}{"total_amount": decimal.RequireFromString("999.99"), "transaction_count": 42}).Error
	suite.Require().Nil(err)

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/accounts/%s/reconcile", account.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	var aggregate models.CategoryAggregate
	suite.Require().Nil(models.DB.First(&aggregate, "account_id = ? AND category = ?", account.Data.ID, "food").Error)
	suite.assertDecimalEqual(decimal.RequireFromString("150.00"), aggregate.TotalAmount)
	suite.Assert().Equal(uint(1), aggregate.TransactionCount)
}

func (suite *TestSuiteStandard) TestReconcileAccountNotFound() {
	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/accounts/%s/reconcile", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
