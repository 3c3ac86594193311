package v1

import (
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// ExpenseEditable represents all values needed to record an expense.
type ExpenseEditable struct {
	AccountID   uuid.UUID       `json:"accountId" binding:"required" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Account the expense is debited from
	Category    string          `json:"category" binding:"required" example:"food"`                                  // Category key from the catalog
	Amount      decimal.Decimal `json:"amount" example:"150.00"`                                                     // Amount, positive with at most two decimal places
	Description string          `json:"description" example:"Weekly groceries" default:""`                           // Free-text description
}

// IncomeEditable represents all values needed to record an income.
type IncomeEditable struct {
	AccountID   uuid.UUID       `json:"accountId" binding:"required" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Account the income is credited to
	Amount      decimal.Decimal `json:"amount" example:"1000.00"`                                                    // Amount, positive with at most two decimal places
	Source      string          `json:"source" example:"bonus" default:""`                                           // Where the income came from
	Description string          `json:"description" example:"Yearly bonus" default:""`                               // Free-text description
}

type TransactionResponse struct {
	Data  *models.Transaction `json:"data"`                                                          // The Transaction
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data  []models.Transaction `json:"data"`                                                          // List of Transactions
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
