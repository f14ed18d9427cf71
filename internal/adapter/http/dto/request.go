package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/moneyflow/internal/domain"
)

// CreateCustomerRequest registers a new customer. Only a hash of the
// personal data crosses the wire.
type CreateCustomerRequest struct {
	DataHash string `json:"data_hash"`
}

// CreateAccountRequest opens an account for a customer in one currency.
type CreateAccountRequest struct {
	CustomerID int64  `json:"customer_id"`
	Currency   string `json:"currency"`
}

// Parse validates the currency code.
func (r *CreateAccountRequest) Parse() (int64, domain.Currency, error) {
	currency, err := domain.ParseCurrency(r.Currency)
	return r.CustomerID, currency, err
}

// AccountSelectorRequest identifies the unique account for a (customer,
// currency) pair, used by find and delete.
type AccountSelectorRequest struct {
	CustomerID int64  `json:"customer_id"`
	Currency   string `json:"currency"`
}

// Parse validates the currency code.
func (r *AccountSelectorRequest) Parse() (int64, domain.Currency, error) {
	currency, err := domain.ParseCurrency(r.Currency)
	return r.CustomerID, currency, err
}

// MoneyRequest deposits into or withdraws from the unique account for a
// (customer, currency) pair.
type MoneyRequest struct {
	CustomerID int64           `json:"customer_id"`
	Currency   string          `json:"currency"`
	Amount     decimal.Decimal `json:"amount"`
}

// Parse validates the currency code.
func (r *MoneyRequest) Parse() (int64, domain.Currency, decimal.Decimal, error) {
	currency, err := domain.ParseCurrency(r.Currency)
	return r.CustomerID, currency, r.Amount, err
}

// TransferRequest asks to move money from sender to receiver within one
// currency.
type TransferRequest struct {
	SenderID   int64           `json:"sender_id"`
	ReceiverID int64           `json:"receiver_id"`
	Currency   string          `json:"currency"`
	Amount     decimal.Decimal `json:"amount"`
}

// Parse validates the currency code.
func (r *TransferRequest) Parse() (domain.Currency, error) {
	return domain.ParseCurrency(r.Currency)
}
