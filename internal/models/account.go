package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account represents a household member's financial record.
//
// The monthly allowance is split into the spendable balance and savings at
// provisioning time, afterwards both are only mutated by the recorder.
type Account struct {
	DefaultModel
	Name             string          `json:"name" example:"Alex"`
	Contact          string          `json:"contact" gorm:"uniqueIndex" example:"+49151123456"` // Unique contact identifier, e.g. a phone number
	MonthlyAllowance decimal.Decimal `json:"monthlyAllowance" gorm:"type:DECIMAL(20,2)" example:"5000.00"`
	CurrentBalance   decimal.Decimal `json:"currentBalance" gorm:"type:DECIMAL(20,2)" example:"4900.00"`
	TotalSavings     decimal.Decimal `json:"totalSavings" gorm:"type:DECIMAL(20,2)" example:"100.00"`
	TotalSpent       decimal.Decimal `json:"totalSpent" gorm:"type:DECIMAL(20,2)" example:"0.00"`
	Note             string          `json:"note" example:"Allowance is transferred on the 1st"`
}

// BeforeSave trims whitespace from all strings
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Contact = strings.TrimSpace(a.Contact)
	a.Note = strings.TrimSpace(a.Note)

	return nil
}

// Transactions returns all transactions for this account, most recent first.
func (a Account) Transactions(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction

	// sqlite's datetime() would truncate to whole seconds here, the stored
	// values sort correctly with their full precision. rowid breaks exact
	// ties in insertion order.
	err := db.
		Where(&Transaction{AccountID: a.ID}).
		Order("transactions.date DESC, transactions.created_at DESC, transactions.rowid DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// Aggregates returns all category aggregates for this account.
func (a Account) Aggregates(db *gorm.DB) ([]CategoryAggregate, error) {
	var aggregates []CategoryAggregate

	err := db.
		Where(&CategoryAggregate{AccountID: a.ID}).
		Order("category_aggregates.total_amount DESC").
		Find(&aggregates).Error
	if err != nil {
		return nil, err
	}

	return aggregates, nil
}
