package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryAggregate holds the running expense totals for one account and
// category.
//
// One row is created per known category when an account is provisioned and
// incremented on every matching expense. It is a denormalized cache of the
// transaction log, ledger.RecomputeAggregates rebuilds it from the log.
type CategoryAggregate struct {
	DefaultModel
	AccountID        uuid.UUID       `json:"accountId" gorm:"uniqueIndex:aggregate_account_category"`
	Account          Account         `json:"-"`
	Category         string          `json:"category" gorm:"uniqueIndex:aggregate_account_category" example:"food"`
	TotalAmount      decimal.Decimal `json:"totalAmount" gorm:"type:DECIMAL(20,2)" example:"150.00"`
	TransactionCount uint            `json:"transactionCount" example:"1"`
}

// BeforeSave trims whitespace from the category key
func (a *CategoryAggregate) BeforeSave(_ *gorm.DB) error {
	a.Category = strings.TrimSpace(a.Category)

	return nil
}
