package ledger

import (
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// SplitIncome splits an income amount between savings and balance.
//
// The savings half is truncated to full cents, the remainder goes to the
// balance. This keeps savings + balance == amount exact for every amount
// with two decimal places, including odd-cent values: 0.01 splits into
// savings 0.00 and balance 0.01.
func SplitIncome(amount decimal.Decimal) (savings, balance decimal.Decimal) {
	savings = amount.Div(two).Truncate(2)
	balance = amount.Sub(savings)
	return
}
