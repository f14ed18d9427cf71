package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors for the ledger core. A nil
// *Metrics is valid everywhere and disables recording, which keeps unit
// tests away from the global registry.
type Metrics struct {
	// Request-time transfer metrics
	TransfersAccepted prometheus.Counter
	TransfersRejected *prometheus.CounterVec

	// Settlement metrics
	TransactionsCommitted  prometheus.Counter
	TransactionsRolledBack prometheus.Counter
	SettlementStuck        prometheus.Counter
	SweepDuration          prometheus.Histogram
	SweepBatchSize         prometheus.Histogram

	// Ledger metrics
	CustomersCreated prometheus.Counter
	AccountsCreated  prometheus.Counter
}

// New creates and registers all collectors on the default registry.
func New() *Metrics {
	return &Metrics{
		TransfersAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "moneyflow_transfers_accepted_total",
			Help: "Transfers that debited the sender and entered the pending queue",
		}),
		TransfersRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moneyflow_transfers_rejected_total",
				Help: "Transfers rejected at request time by reason",
			},
			[]string{"reason"},
		),

		TransactionsCommitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "moneyflow_transactions_committed_total",
			Help: "Pending transactions settled to COMMIT",
		}),
		TransactionsRolledBack: promauto.NewCounter(prometheus.CounterOpts{
			Name: "moneyflow_transactions_rolled_back_total",
			Help: "Pending transactions settled to ROLLBACK",
		}),
		SettlementStuck: promauto.NewCounter(prometheus.CounterOpts{
			Name: "moneyflow_settlement_stuck_total",
			Help: "Transactions left in LOCK because the refund could not be applied",
		}),
		SweepDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "moneyflow_settlement_sweep_duration_seconds",
			Help:    "Duration of one settlement sweep",
			Buckets: prometheus.DefBuckets,
		}),
		SweepBatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "moneyflow_settlement_sweep_batch_size",
			Help:    "Pending transactions picked up per sweep",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		}),

		CustomersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "moneyflow_customers_created_total",
			Help: "Total number of customers created",
		}),
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "moneyflow_accounts_created_total",
			Help: "Total number of accounts created",
		}),
	}
}
