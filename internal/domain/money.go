package domain

import "github.com/shopspring/decimal"

// Money arithmetic. Every balance carries a fixed fractional scale of four
// digits; deposits and withdrawals rescale the account side before applying
// the delta so that amounts are never silently rounded away. Balances must
// never pass through a float.

// MoneyScale is the fixed number of fractional digits for all balances.
const MoneyScale = 4

// MoneyZero is the additive identity at the fixed scale.
var MoneyZero = decimal.New(0, -MoneyScale)

// MoneyFromInt returns n as a fixed-scale amount.
func MoneyFromInt(n int64) decimal.Decimal {
	return decimal.NewFromInt(n).Round(MoneyScale)
}

// Deposit returns balance + amount at the fixed scale.
func Deposit(balance, amount decimal.Decimal) decimal.Decimal {
	return balance.Round(MoneyScale).Add(amount)
}

// Withdraw returns balance - amount at the fixed scale.
func Withdraw(balance, amount decimal.Decimal) decimal.Decimal {
	return balance.Round(MoneyScale).Sub(amount)
}

// SumAmounts folds amounts over the fixed-scale zero. An empty list sums
// to the identity.
func SumAmounts(amounts []decimal.Decimal) decimal.Decimal {
	total := MoneyZero
	for _, a := range amounts {
		total = total.Add(a)
	}

	return total
}
