package v1

import (
	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// AccountEditable represents all values needed to provision an account.
type AccountEditable struct {
	Name             string          `json:"name" binding:"required" example:"Alex"`                      // Display name of the account holder
	Contact          string          `json:"contact" binding:"required" example:"+49151123456"`           // Unique contact identifier
	MonthlyAllowance decimal.Decimal `json:"monthlyAllowance" example:"5000.00"`                          // Monthly allowance, must cover the savings carve-out
	Note             string          `json:"note" example:"Allowance is transferred on the 1st" default:""` // Notes about the account
}

type AccountResponse struct {
	Data  *models.Account `json:"data"`                                                          // The Account
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AccountListResponse struct {
	Data  []models.Account `json:"data"`                                                          // List of Accounts
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
