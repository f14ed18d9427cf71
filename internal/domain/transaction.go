package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus tracks a money transaction through its lifecycle:
//
//	(REJECTED | PENDING) -> LOCK -> (COMMIT | ROLLBACK)
type TransactionStatus string

const (
	// StatusRejected means the transfer failed validation or reservation.
	// Rejected transactions are returned to the caller but never persisted.
	StatusRejected TransactionStatus = "REJECTED"

	// StatusPending means the sender has been debited and the transaction
	// is queued for settlement. The receiver side is untouched.
	StatusPending TransactionStatus = "PENDING"

	// StatusLock is the write-ahead marker set when settlement starts
	// delivering to the receiver. It remains until COMMIT or ROLLBACK.
	StatusLock TransactionStatus = "LOCK"

	// StatusCommit is terminal: funds moved from sender to receiver.
	StatusCommit TransactionStatus = "COMMIT"

	// StatusRollback is terminal: delivery failed and the reserved amount
	// was returned to the sender.
	StatusRollback TransactionStatus = "ROLLBACK"
)

// MoneyTransaction is the amount reserved from a sender, waiting to be
// delivered to a receiver account of the same currency. If delivery fails
// the amount is refunded to the sender.
type MoneyTransaction struct {
	ID         int64
	CreatedAt  time.Time
	Status     TransactionStatus
	SenderID   int64
	ReceiverID int64
	Currency   Currency
	Amount     decimal.Decimal
}

func (t MoneyTransaction) EntityID() int64 { return t.ID }

// Terminal reports whether the transaction will never change again.
func (t MoneyTransaction) Terminal() bool {
	return t.Status == StatusCommit || t.Status == StatusRollback || t.Status == StatusRejected
}
