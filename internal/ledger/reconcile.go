package ledger

import (
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecomputeAggregates rebuilds the category aggregates of one account by
// replaying its expense log.
//
// The aggregates are a denormalized cache, under normal operation they are
// maintained incrementally and never drift. This is the explicit repair path
// for when they do, e.g. after restoring from a partial backup.
func RecomputeAggregates(db *gorm.DB, accountID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.First(&account, "id = ?", accountID).Error; err != nil {
			return err
		}

		// Reset the seeded rows, then add the replayed totals on top
		err := tx.Model(&models.CategoryAggregate{}).
			Where("account_id = ?", accountID).
			Updates(map[string]interface{}{
				"total_amount":      decimal.Zero,
				"transaction_count": 0,
			}).Error
		if err != nil {
			return err
		}

		var totals []struct {
			Category         string
			TotalAmount      decimal.Decimal
			TransactionCount uint
		}

		err = tx.Model(&models.Transaction{}).
			Select("category, SUM(amount) AS total_amount, COUNT(*) AS transaction_count").
			Where(&models.Transaction{AccountID: accountID, Kind: models.KindExpense}).
			Group("category").
			Scan(&totals).Error
		if err != nil {
			return err
		}

		for _, total := range totals {
			err = upsertAggregate(tx, accountID, total.Category, total.TotalAmount, total.TransactionCount)
			if err != nil {
				return err
			}
		}

		log.Debug().
			Str("account", accountID.String()).
			Int("categories", len(totals)).
			Msg("aggregates recomputed")

		return nil
	})
}
