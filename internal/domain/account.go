package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account holds a single-currency balance for one customer. A customer has
// at most one account per currency; more than one match on lookup is an
// invariant violation reported as ErrDuplicateAccounts, never resolved
// silently.
type Account struct {
	ID         int64
	CreatedAt  time.Time
	Currency   Currency
	Amount     decimal.Decimal
	CustomerID int64
}

func (a Account) EntityID() int64 { return a.ID }
