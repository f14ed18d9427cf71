package domain

import "errors"

var (
	// Customer errors
	ErrCustomerNotFound = errors.New("customer not found")
	ErrCustomerBlocked  = errors.New("customer is blocked")

	// Account errors
	ErrAccountAlreadyExists = errors.New("account already exists for customer and currency")
	ErrAccountNotExists     = errors.New("account not found for customer and currency")
	ErrDuplicateAccounts    = errors.New("more than one account found for customer and currency")
	ErrInsufficientFunds    = errors.New("insufficient funds")

	// Transfer errors
	ErrTransferToSelf      = errors.New("cannot transfer to self")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrTransactionNotFound = errors.New("transaction not found")

	ErrUnknownCurrency = errors.New("unknown currency")
)
