package ledger

import (
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// recentTransactionLimit is the number of transactions shown on the dashboard.
const recentTransactionLimit = 20

// Dashboard is a consistent snapshot of one account.
type Dashboard struct {
	Account            models.Account       `json:"account"`
	Categories         []CategorySpending   `json:"categories"`   // Ordered by total amount, highest first
	RecentTransactions []models.Transaction `json:"transactions"` // Most recent first
}

// CategorySpending is an aggregate joined with the category display metadata.
type CategorySpending struct {
	Category         string          `json:"category" example:"food"`
	Label            string          `json:"label" example:"Food & Groceries"`
	Icon             string          `json:"icon" example:"utensils"`
	TotalAmount      decimal.Decimal `json:"totalAmount" example:"150.00"`
	TransactionCount uint            `json:"transactionCount" example:"1"`
}

// GetDashboard assembles the dashboard for one account.
//
// All three reads run in a single database transaction so the snapshot never
// mixes pre- and post-commit state of a concurrent recorder operation. It
// mutates nothing.
func GetDashboard(db *gorm.DB, accountID uuid.UUID) (Dashboard, error) {
	var dashboard Dashboard

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&dashboard.Account, "id = ?", accountID).Error; err != nil {
			return err
		}

		err := tx.Model(&models.CategoryAggregate{}).
			Select("category_aggregates.category, categories.label, categories.icon, category_aggregates.total_amount, category_aggregates.transaction_count").
			Joins("JOIN categories ON categories.name = category_aggregates.category").
			Where("category_aggregates.account_id = ?", accountID).
			Order("category_aggregates.total_amount DESC, category_aggregates.category ASC").
			Scan(&dashboard.Categories).Error
		if err != nil {
			return err
		}

		// Stored values keep sub-second precision, rowid breaks exact ties
		// in insertion order
		return tx.
			Where(&models.Transaction{AccountID: accountID}).
			Order("transactions.date DESC, transactions.created_at DESC, transactions.rowid DESC").
			Limit(recentTransactionLimit).
			Find(&dashboard.RecentTransactions).Error
	})
	if err != nil {
		return Dashboard{}, err
	}

	return dashboard, nil
}
