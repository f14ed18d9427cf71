package usecase_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/moneyflow/internal/domain"
	"github.com/iho/moneyflow/internal/store"
	"github.com/iho/moneyflow/internal/usecase"
)

// fixture wires all services over fresh stores with a deterministic
// clock, the way the ledger package does in production.
type fixture struct {
	customerStore *store.Store[domain.Customer]
	accountStore  *store.Store[domain.Account]
	txStore       *store.Store[domain.MoneyTransaction]

	customers  *usecase.CustomerService
	accounts   *usecase.AccountService
	transfers  *usecase.TransferService
	settlement *usecase.Settlement
}

func newFixture() *fixture {
	now := testClock()

	customerStore := store.New[domain.Customer]()
	accountStore := store.New[domain.Account]()
	txStore := store.New[domain.MoneyTransaction]()

	customers := usecase.NewCustomerService(customerStore, now)
	accounts := usecase.NewAccountService(accountStore, now)
	transfers := usecase.NewTransferService(txStore, customers, accounts, now, nil)
	settlement := usecase.NewSettlement(txStore, customers, accounts, transfers, zerolog.Nop(), nil)

	return &fixture{
		customerStore: customerStore,
		accountStore:  accountStore,
		txStore:       txStore,
		customers:     customers,
		accounts:      accounts,
		transfers:     transfers,
		settlement:    settlement,
	}
}

// testClock advances one millisecond per call so creation timestamps are
// strictly increasing and settlement order is deterministic.
func testClock() func() time.Time {
	current := time.Unix(1_700_000_000, 0).UTC()

	return func() time.Time {
		current = current.Add(time.Millisecond)
		return current
	}
}

func (f *fixture) newFundedCustomer(t *testing.T, currency domain.Currency, amount string) domain.Customer {
	t.Helper()

	c := f.customers.Create("hash-" + t.Name())
	if _, err := f.accounts.Create(c.ID, currency); err != nil {
		t.Fatalf("failed to create account: %v", err)
	}

	if amount != "0" {
		if _, err := f.accounts.Deposit(c.ID, currency, decimal.RequireFromString(amount)); err != nil {
			t.Fatalf("failed to fund account: %v", err)
		}
	}

	return c
}

func (f *fixture) balance(t *testing.T, customerID int64, currency domain.Currency) decimal.Decimal {
	t.Helper()

	account, err := f.accounts.FindByCustomer(customerID, currency)
	if err != nil {
		t.Fatalf("failed to resolve account: %v", err)
	}

	return account.Amount
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
