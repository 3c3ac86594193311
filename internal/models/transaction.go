package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionKind is the type of a transaction.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// Transaction represents a single income or expense event for an account.
//
// Transactions are append-only. Once committed they are never updated, they
// are only removed when the owning account is deleted.
type Transaction struct {
	DefaultModel
	AccountID   uuid.UUID       `json:"accountId" gorm:"index"`
	Account     Account         `json:"-"`
	Kind        TransactionKind `json:"kind" example:"expense"`
	Category    *string         `json:"category" example:"food"` // Only set for expenses
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,2)" example:"150.00"`
	Description string          `json:"description" example:"Weekly groceries"`
	Source      string          `json:"source" example:"salary"` // Only set for income
	Date        time.Time       `json:"date"`                    // Time of day is currently only used for sorting
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	// Enforce dates to be in UTC
	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - sets the timezone for the Date to UTC
//   - normalizes the category pointer so an empty category is always nil
//   - trims whitespace from string fields
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Description = strings.TrimSpace(t.Description)
	t.Source = strings.TrimSpace(t.Source)

	// Ensure that the category is nil and not a pointer to an empty string
	// when it is not set
	if t.Category != nil && strings.TrimSpace(*t.Category) == "" {
		t.Category = nil
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return
}
