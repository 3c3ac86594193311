// Package ledger implements the consistency engine for the allowance ledger.
//
// Every operation that moves money is a single atomic unit: the transaction
// log append, the account mutation and the aggregate update commit together
// or not at all.
package ledger

import (
	"errors"

	"github.com/shopspring/decimal"
)

// SavingsCarveOut is deducted from the allowance and moved to savings when an
// account is provisioned.
var SavingsCarveOut = decimal.NewFromInt(100)

var (
	// ErrAmountNotPositive is returned when a transaction or allowance amount
	// is zero or negative.
	ErrAmountNotPositive = errors.New("amounts must be larger than zero")

	// ErrAmountPrecision is returned when an amount has more than two decimal
	// places.
	ErrAmountPrecision = errors.New("amounts must not have more than two decimal places")

	// ErrInsufficientBalance is the business outcome for an expense that
	// exceeds the current balance. It is expected, not exceptional.
	ErrInsufficientBalance = errors.New("the account balance is not sufficient for this expense")

	// ErrAllowanceBelowCarveOut is returned when the monthly allowance is
	// smaller than the savings carve-out, which would provision a negative
	// starting balance.
	ErrAllowanceBelowCarveOut = errors.New("the monthly allowance must not be smaller than the savings carve-out")

	// ErrCategoryUnknown is returned for expenses with a category that is not
	// in the catalog.
	ErrCategoryUnknown = errors.New("there is no category with this name")
)

// validateAmount rejects amounts that are not positive or carry sub-cent
// precision. It runs before any store access.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !amount.Equal(amount.Truncate(2)) {
		return ErrAmountPrecision
	}

	return nil
}
