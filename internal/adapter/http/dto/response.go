package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/moneyflow/internal/domain"
)

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	DataHash  string    `json:"data_hash"`
	Blocked   bool      `json:"blocked"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerFromDomain converts a domain customer to a response.
func CustomerFromDomain(c domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		DataHash:  c.DataHash,
		Blocked:   c.Blocked,
		CreatedAt: c.CreatedAt,
	}
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID         int64           `json:"id"`
	CustomerID int64           `json:"customer_id"`
	Currency   string          `json:"currency"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"created_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:         a.ID,
		CustomerID: a.CustomerID,
		Currency:   string(a.Currency),
		Amount:     a.Amount,
		CreatedAt:  a.CreatedAt,
	}
}

// TransactionResponse represents a money transaction in API responses.
type TransactionResponse struct {
	ID         int64           `json:"id"`
	Status     string          `json:"status"`
	SenderID   int64           `json:"sender_id"`
	ReceiverID int64           `json:"receiver_id"`
	Currency   string          `json:"currency"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"created_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t domain.MoneyTransaction) *TransactionResponse {
	return &TransactionResponse{
		ID:         t.ID,
		Status:     string(t.Status),
		SenderID:   t.SenderID,
		ReceiverID: t.ReceiverID,
		Currency:   string(t.Currency),
		Amount:     t.Amount,
		CreatedAt:  t.CreatedAt,
	}
}

// SettlementResponse reports the outcome of one settlement sweep.
type SettlementResponse struct {
	Processed int `json:"processed"`
}

// ErrorResponse is the error envelope. Transfer rejections additionally
// carry the non-persisted REJECTED transaction snapshot.
type ErrorResponse struct {
	Error       string               `json:"error"`
	Message     string               `json:"message,omitempty"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}
