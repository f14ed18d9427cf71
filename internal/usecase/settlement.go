package usecase

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/moneyflow/internal/domain"
	"github.com/iho/moneyflow/internal/infrastructure/metrics"
	"github.com/iho/moneyflow/internal/store"
)

// Settlement periodically drains pending transactions, driving each one
// through the begin/commit-or-rollback protocol, strictly one at a time.
type Settlement struct {
	transactions *store.Store[domain.MoneyTransaction]
	customers    *CustomerService
	accounts     *AccountService
	transfers    *TransferService
	log          zerolog.Logger
	metrics      *metrics.Metrics

	// mu guards per-transaction processing so overlapping invocations
	// (reentrant timer firings) stay safe. It does not parallelize
	// anything within a sweep.
	mu sync.Mutex
}

// NewSettlement creates a Settlement sweep.
func NewSettlement(
	transactions *store.Store[domain.MoneyTransaction],
	customers *CustomerService,
	accounts *AccountService,
	transfers *TransferService,
	log zerolog.Logger,
	m *metrics.Metrics,
) *Settlement {
	return &Settlement{
		transactions: transactions,
		customers:    customers,
		accounts:     accounts,
		transfers:    transfers,
		log:          log,
		metrics:      m,
	}
}

// SettleOnce takes a snapshot of all PENDING transactions in ascending
// creation order and processes each to a terminal (or stuck) state before
// starting the next. Transactions created after the snapshot wait for the
// next sweep. It returns the number of transactions processed.
func (s *Settlement) SettleOnce() int {
	start := time.Now()
	pending := s.transfers.Pending()

	for i := range pending {
		s.mu.Lock()
		s.process(pending[i])
		s.mu.Unlock()
	}

	if s.metrics != nil {
		s.metrics.SweepDuration.Observe(time.Since(start).Seconds())
		s.metrics.SweepBatchSize.Observe(float64(len(pending)))
	}

	return len(pending)
}

func (s *Settlement) process(tx domain.MoneyTransaction) {
	mt := &moneyTransfer{
		tx:           tx,
		transactions: s.transactions,
		customers:    s.customers,
		accounts:     s.accounts,
		log:          s.log,
	}

	final := mt.process()

	s.log.Debug().
		Int64("transaction_id", tx.ID).
		Str("status", string(final)).
		Msg("transaction settled")

	if s.metrics == nil {
		return
	}

	switch final {
	case domain.StatusCommit:
		s.metrics.TransactionsCommitted.Inc()
	case domain.StatusRollback:
		s.metrics.TransactionsRolledBack.Inc()
	case domain.StatusLock:
		s.metrics.SettlementStuck.Inc()
	}
}
