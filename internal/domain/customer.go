package domain

import "time"

// Customer owns zero or more accounts, at most one per currency.
// DataHash stands in for personal data: name, phone and email are never
// stored directly, only a hash of them.
type Customer struct {
	ID        int64
	CreatedAt time.Time
	Blocked   bool
	DataHash  string
}

func (c Customer) EntityID() int64 { return c.ID }
