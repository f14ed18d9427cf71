// Package ledger wires the stores and services into one explicitly
// constructed unit and serializes every operation through a single worker
// goroutine. The stores have no locking of their own; the worker loop is
// what makes concurrent HTTP handlers and the settlement ticker safe.
package ledger

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/moneyflow/internal/domain"
	"github.com/iho/moneyflow/internal/infrastructure/metrics"
	"github.com/iho/moneyflow/internal/store"
	"github.com/iho/moneyflow/internal/usecase"
)

type command struct {
	run  func()
	done chan struct{}
}

// Ledger holds the stores and services and the command queue feeding the
// worker. Callers submit typed operations and wait for the reply; no two
// operations ever run concurrently.
type Ledger struct {
	customers  *usecase.CustomerService
	accounts   *usecase.AccountService
	transfers  *usecase.TransferService
	settlement *usecase.Settlement
	metrics    *metrics.Metrics

	commands chan command
	log      zerolog.Logger
}

// Options configures a Ledger. Zero values get sensible defaults.
type Options struct {
	Log       zerolog.Logger
	Metrics   *metrics.Metrics
	Now       func() time.Time
	QueueSize int
}

// New constructs a Ledger with fresh, empty stores.
func New(opts Options) *Ledger {
	now := opts.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}

	queueSize := opts.QueueSize
	if queueSize <= 0 {
		queueSize = 64
	}

	customerStore := store.New[domain.Customer]()
	accountStore := store.New[domain.Account]()
	transactionStore := store.New[domain.MoneyTransaction]()

	customers := usecase.NewCustomerService(customerStore, now)
	accounts := usecase.NewAccountService(accountStore, now)
	transfers := usecase.NewTransferService(transactionStore, customers, accounts, now, opts.Metrics)
	settlement := usecase.NewSettlement(transactionStore, customers, accounts, transfers, opts.Log, opts.Metrics)

	return &Ledger{
		customers:  customers,
		accounts:   accounts,
		transfers:  transfers,
		settlement: settlement,
		metrics:    opts.Metrics,
		commands:   make(chan command, queueSize),
		log:        opts.Log,
	}
}

// Run consumes commands until ctx is cancelled. Exactly one Run loop must
// be active for the Ledger to make progress.
func (l *Ledger) Run(ctx context.Context) {
	l.log.Info().Msg("ledger worker started")

	for {
		select {
		case <-ctx.Done():
			l.log.Info().Msg("ledger worker stopped")
			return
		case cmd := <-l.commands:
			cmd.run()
			close(cmd.done)
		}
	}
}

// do submits run to the worker and waits for it to complete. It returns
// ctx.Err() if the context is cancelled before the command is accepted or
// finished; in that case the caller must not read the command's results.
func (l *Ledger) do(ctx context.Context, run func()) error {
	cmd := command{run: run, done: make(chan struct{})}

	select {
	case l.commands <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-cmd.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// CreateCustomer registers a new customer from a personal-data hash.
func (l *Ledger) CreateCustomer(ctx context.Context, dataHash string) (domain.Customer, error) {
	var c domain.Customer

	err := l.do(ctx, func() {
		c = l.customers.Create(dataHash)
		if l.metrics != nil {
			l.metrics.CustomersCreated.Inc()
		}
	})

	return c, err
}

// BlockCustomer marks a customer as blocked.
func (l *Ledger) BlockCustomer(ctx context.Context, id int64) (domain.Customer, error) {
	var (
		c     domain.Customer
		opErr error
	)

	if err := l.do(ctx, func() { c, opErr = l.customers.Block(id) }); err != nil {
		return domain.Customer{}, err
	}

	return c, opErr
}

// GetCustomer returns a customer by id.
func (l *Ledger) GetCustomer(ctx context.Context, id int64) (domain.Customer, error) {
	var (
		c     domain.Customer
		opErr error
	)

	if err := l.do(ctx, func() { c, opErr = l.customers.Read(id) }); err != nil {
		return domain.Customer{}, err
	}

	return c, opErr
}

// CreateAccount opens a zero-balance account.
func (l *Ledger) CreateAccount(ctx context.Context, customerID int64, currency domain.Currency) (domain.Account, error) {
	var (
		a     domain.Account
		opErr error
	)

	if err := l.do(ctx, func() {
		a, opErr = l.accounts.Create(customerID, currency)
		if opErr == nil && l.metrics != nil {
			l.metrics.AccountsCreated.Inc()
		}
	}); err != nil {
		return domain.Account{}, err
	}

	return a, opErr
}

// FindAccount resolves the unique account for (customerID, currency).
func (l *Ledger) FindAccount(ctx context.Context, customerID int64, currency domain.Currency) (domain.Account, error) {
	var (
		a     domain.Account
		opErr error
	)

	if err := l.do(ctx, func() { a, opErr = l.accounts.FindByCustomer(customerID, currency) }); err != nil {
		return domain.Account{}, err
	}

	return a, opErr
}

// DeleteAccount removes the unique account for (customerID, currency).
func (l *Ledger) DeleteAccount(ctx context.Context, customerID int64, currency domain.Currency) (domain.Account, error) {
	var (
		a     domain.Account
		opErr error
	)

	if err := l.do(ctx, func() { a, opErr = l.accounts.DeleteByCustomer(customerID, currency) }); err != nil {
		return domain.Account{}, err
	}

	return a, opErr
}

// Deposit credits the unique account for (customerID, currency).
func (l *Ledger) Deposit(ctx context.Context, customerID int64, currency domain.Currency, amount decimal.Decimal) (domain.Account, error) {
	var (
		a     domain.Account
		opErr error
	)

	if err := l.do(ctx, func() { a, opErr = l.accounts.Deposit(customerID, currency, amount) }); err != nil {
		return domain.Account{}, err
	}

	return a, opErr
}

// Withdraw debits the unique account for (customerID, currency).
func (l *Ledger) Withdraw(ctx context.Context, customerID int64, currency domain.Currency, amount decimal.Decimal) (domain.Account, error) {
	var (
		a     domain.Account
		opErr error
	)

	if err := l.do(ctx, func() { a, opErr = l.accounts.Withdraw(customerID, currency, amount) }); err != nil {
		return domain.Account{}, err
	}

	return a, opErr
}

// Transfer runs the request-time transfer phase. On rejection the returned
// transaction is a REJECTED snapshot and the error carries the reason.
func (l *Ledger) Transfer(ctx context.Context, senderID, receiverID int64, currency domain.Currency, amount decimal.Decimal) (domain.MoneyTransaction, error) {
	var (
		tx    domain.MoneyTransaction
		opErr error
	)

	if err := l.do(ctx, func() { tx, opErr = l.transfers.Transfer(senderID, receiverID, currency, amount) }); err != nil {
		return domain.MoneyTransaction{}, err
	}

	return tx, opErr
}

// GetTransaction returns a money transaction by id.
func (l *Ledger) GetTransaction(ctx context.Context, id int64) (domain.MoneyTransaction, error) {
	var (
		tx    domain.MoneyTransaction
		opErr error
	)

	if err := l.do(ctx, func() { tx, opErr = l.transfers.Read(id) }); err != nil {
		return domain.MoneyTransaction{}, err
	}

	return tx, opErr
}

// SettleOnce runs one settlement sweep and returns the number of
// transactions processed. It runs on the same worker as every other
// operation, so a sweep never interleaves with a transfer.
func (l *Ledger) SettleOnce(ctx context.Context) (int, error) {
	var n int

	if err := l.do(ctx, func() { n = l.settlement.SettleOnce() }); err != nil {
		return 0, err
	}

	return n, nil
}
