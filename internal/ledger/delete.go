package ledger

import (
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DeleteAccount removes an account with all its transactions and aggregates.
//
// The fan-out is explicit and transactional: children are deleted before the
// account inside one atomic unit, so no orphan rows can survive. Deletes are
// hard deletes, the transaction log of a deleted account does not linger as
// soft-deleted rows.
func DeleteAccount(db *gorm.DB, accountID uuid.UUID) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.First(&account, "id = ?", accountID).Error; err != nil {
			return err
		}

		err := tx.Unscoped().
			Where(&models.Transaction{AccountID: accountID}).
			Delete(&models.Transaction{}).Error
		if err != nil {
			return err
		}

		err = tx.Unscoped().
			Where(&models.CategoryAggregate{AccountID: accountID}).
			Delete(&models.CategoryAggregate{}).Error
		if err != nil {
			return err
		}

		return tx.Unscoped().Delete(&account).Error
	})
	if err != nil {
		return err
	}

	log.Debug().Str("account", accountID.String()).Msg("account deleted")
	return nil
}
