package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/moneyflow/internal/domain"
	"github.com/iho/moneyflow/internal/store"
)

// AccountService owns the account collection. Deposit and Withdraw are
// administrative primitives; the transfer protocol is the only sanctioned
// path for moving funds between two customers.
type AccountService struct {
	accounts *store.Store[domain.Account]
	seq      store.Sequence
	now      func() time.Time
}

// NewAccountService creates an AccountService over the given store.
func NewAccountService(accounts *store.Store[domain.Account], now func() time.Time) *AccountService {
	return &AccountService{accounts: accounts, now: now}
}

// Create opens a zero-balance account for the customer in the given
// currency. A customer can hold at most one account per currency.
func (s *AccountService) Create(customerID int64, currency domain.Currency) (domain.Account, error) {
	found := s.accounts.Select(accountByCustomerAndCurrency(customerID, currency), oldestAccountFirst)
	if len(found) > 0 {
		return found[len(found)-1], domain.ErrAccountAlreadyExists
	}

	return s.accounts.Create(domain.Account{
		ID:         s.seq.Next(),
		CreatedAt:  s.now(),
		Currency:   currency,
		Amount:     domain.MoneyZero,
		CustomerID: customerID,
	}), nil
}

// FindByCustomer resolves the unique account for (customerID, currency).
// Zero matches is ErrAccountNotExists; more than one is an invariant
// violation reported as ErrDuplicateAccounts with the newest match as a
// best-effort snapshot.
func (s *AccountService) FindByCustomer(customerID int64, currency domain.Currency) (domain.Account, error) {
	found := s.accounts.Select(accountByCustomerAndCurrency(customerID, currency), oldestAccountFirst)
	switch {
	case len(found) == 0:
		return domain.Account{}, domain.ErrAccountNotExists
	case len(found) > 1:
		return found[len(found)-1], domain.ErrDuplicateAccounts
	default:
		return found[0], nil
	}
}

// Deposit adds amount to the unique account for (customerID, currency).
func (s *AccountService) Deposit(customerID int64, currency domain.Currency, amount decimal.Decimal) (domain.Account, error) {
	account, err := s.FindByCustomer(customerID, currency)
	if err != nil {
		return account, err
	}

	account.Amount = domain.Deposit(account.Amount, amount)

	return s.accounts.Update(account), nil
}

// Withdraw subtracts amount from the unique account for (customerID,
// currency). The comparison is exact: withdrawing more than the balance
// fails with ErrInsufficientFunds and leaves the balance untouched.
func (s *AccountService) Withdraw(customerID int64, currency domain.Currency, amount decimal.Decimal) (domain.Account, error) {
	account, err := s.FindByCustomer(customerID, currency)
	if err != nil {
		return account, err
	}

	if account.Amount.LessThan(amount) {
		return account, domain.ErrInsufficientFunds
	}

	account.Amount = domain.Withdraw(account.Amount, amount)

	return s.accounts.Update(account), nil
}

// Delete removes the account by id. Absent ids succeed with a zero value.
func (s *AccountService) Delete(id int64) domain.Account {
	return s.accounts.Delete(id)
}

// DeleteByCustomer resolves the unique account for (customerID, currency)
// and removes it.
func (s *AccountService) DeleteByCustomer(customerID int64, currency domain.Currency) (domain.Account, error) {
	account, err := s.FindByCustomer(customerID, currency)
	if err != nil {
		return account, err
	}

	return s.accounts.Delete(account.ID), nil
}
