package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordExpense appends an expense transaction and applies its deltas.
//
// The balance-sufficiency check is a conditional UPDATE on the account row, so
// two concurrent expenses can never both pass against a stale balance: the
// database evaluates the guard against the committed state, and at most one
// of two racing debits that jointly exceed the balance succeeds.
//
// On ErrInsufficientBalance nothing has been written.
func RecordExpense(db *gorm.DB, accountID uuid.UUID, category string, amount decimal.Decimal, description string) (models.Transaction, error) {
	if err := validateAmount(amount); err != nil {
		return models.Transaction{}, err
	}

	// Validation, no store mutation yet
	err := db.First(&models.Category{}, "name = ?", category).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			return models.Transaction{}, ErrCategoryUnknown
		}
		return models.Transaction{}, err
	}

	transaction := models.Transaction{
		AccountID:   accountID,
		Kind:        models.KindExpense,
		Category:    &category,
		Amount:      amount,
		Description: description,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		// Ensures an unknown account surfaces as a not-found error instead
		// of a silent no-op of the guarded update below
		var account models.Account
		if err := tx.First(&account, "id = ?", accountID).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Account{}).
			Where("id = ? AND current_balance >= ?", accountID, amount).
			Updates(map[string]interface{}{
				"current_balance": gorm.Expr("current_balance - ?", amount),
				"total_spent":     gorm.Expr("total_spent + ?", amount),
			})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			return ErrInsufficientBalance
		}

		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}

		return upsertAggregate(tx, accountID, category, amount, 1)
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

// RecordIncome appends an income transaction and applies the 50/50 split
// between savings and balance. See SplitIncome for the rounding rule.
//
// Income cannot fail on business grounds, only on validation or storage
// errors. Category aggregates are not touched.
func RecordIncome(db *gorm.DB, accountID uuid.UUID, amount decimal.Decimal, source, description string) (models.Transaction, error) {
	if err := validateAmount(amount); err != nil {
		return models.Transaction{}, err
	}

	savings, balance := SplitIncome(amount)

	transaction := models.Transaction{
		AccountID:   accountID,
		Kind:        models.KindIncome,
		Amount:      amount,
		Source:      source,
		Description: description,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.First(&account, "id = ?", accountID).Error; err != nil {
			return err
		}

		err := tx.Model(&models.Account{}).
			Where("id = ?", accountID).
			Updates(map[string]interface{}{
				"current_balance": gorm.Expr("current_balance + ?", balance),
				"total_savings":   gorm.Expr("total_savings + ?", savings),
			}).Error
		if err != nil {
			return err
		}

		return tx.Create(&transaction).Error
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

// upsertAggregate adds an expense to the aggregate for (account, category).
//
// The row is seeded at provisioning time, but insert-at-zero-then-add
// tolerates an absent row so a seeding gap cannot make expenses fail.
func upsertAggregate(tx *gorm.DB, accountID uuid.UUID, category string, amount decimal.Decimal, count uint) error {
	aggregate := models.CategoryAggregate{
		AccountID:        accountID,
		Category:         category,
		TotalAmount:      amount,
		TransactionCount: count,
	}

	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}, {Name: "category"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total_amount":      gorm.Expr("total_amount + ?", amount),
			"transaction_count": gorm.Expr("transaction_count + ?", count),
			"updated_at":        time.Now().In(time.UTC),
		}),
	}).Create(&aggregate).Error
}
