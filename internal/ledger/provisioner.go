package ledger

import (
	"github.com/pocketledger/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateAccount provisions a new account from its monthly allowance.
//
// The savings carve-out is deducted from the allowance and seeds the savings,
// the remainder seeds the spendable balance. One zero-valued aggregate row is
// created per known category, atomically with the account row: a partially
// seeded account is never visible.
//
// Fails with models.ErrContactNotUnique when the contact is taken and with
// ErrAllowanceBelowCarveOut when the allowance does not cover the carve-out.
func CreateAccount(db *gorm.DB, name, contact, note string, allowance decimal.Decimal) (models.Account, error) {
	if err := validateAmount(allowance); err != nil {
		return models.Account{}, err
	}

	if allowance.LessThan(SavingsCarveOut) {
		return models.Account{}, ErrAllowanceBelowCarveOut
	}

	account := models.Account{
		Name:             name,
		Contact:          contact,
		Note:             note,
		MonthlyAllowance: allowance,
		CurrentBalance:   allowance.Sub(SavingsCarveOut),
		TotalSavings:     SavingsCarveOut,
		TotalSpent:       decimal.Zero,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&account).Error; err != nil {
			return err
		}

		categories, err := models.Categories(tx)
		if err != nil {
			return err
		}

		for _, category := range categories {
			aggregate := models.CategoryAggregate{
				AccountID:        account.ID,
				Category:         category.Name,
				TotalAmount:      decimal.Zero,
				TransactionCount: 0,
			}

			if err := tx.Create(&aggregate).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return models.Account{}, err
	}

	log.Debug().
		Str("account", account.ID.String()).
		Str("balance", account.CurrentBalance.String()).
		Msg("account provisioned")

	return account, nil
}
