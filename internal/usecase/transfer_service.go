package usecase

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/moneyflow/internal/domain"
	"github.com/iho/moneyflow/internal/infrastructure/metrics"
	"github.com/iho/moneyflow/internal/store"
)

// TransferService implements the request-time phase of the transfer
// protocol: validate, reserve funds from the sender, enqueue a PENDING
// transaction for the settlement loop.
type TransferService struct {
	transactions *store.Store[domain.MoneyTransaction]
	customers    *CustomerService
	accounts     *AccountService
	seq          store.Sequence
	now          func() time.Time
	metrics      *metrics.Metrics
}

// NewTransferService creates a TransferService.
func NewTransferService(
	transactions *store.Store[domain.MoneyTransaction],
	customers *CustomerService,
	accounts *AccountService,
	now func() time.Time,
	m *metrics.Metrics,
) *TransferService {
	return &TransferService{
		transactions: transactions,
		customers:    customers,
		accounts:     accounts,
		now:          now,
		metrics:      m,
	}
}

// Transfer reserves amount from the sender and enqueues the transaction
// for settlement. On any failure it returns a non-persisted REJECTED
// snapshot together with the triggering error; the sender balance is
// only touched when the returned transaction is PENDING.
func (s *TransferService) Transfer(senderID, receiverID int64, currency domain.Currency, amount decimal.Decimal) (domain.MoneyTransaction, error) {
	if err := s.checkPreconditions(senderID, receiverID, currency, amount); err != nil {
		return s.reject(senderID, receiverID, currency, amount, err)
	}

	// The reservation: money leaves the sender's visible balance before
	// the receiver side is ever touched.
	if _, err := s.accounts.Withdraw(senderID, currency, amount); err != nil {
		return s.reject(senderID, receiverID, currency, amount, err)
	}

	tx := s.transactions.Create(domain.MoneyTransaction{
		ID:         s.seq.Next(),
		CreatedAt:  s.now(),
		Status:     domain.StatusPending,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Currency:   currency,
		Amount:     amount,
	})

	if s.metrics != nil {
		s.metrics.TransfersAccepted.Inc()
	}

	return tx, nil
}

// checkPreconditions validates in order, short-circuiting on the first
// failure. No balance is touched here.
func (s *TransferService) checkPreconditions(senderID, receiverID int64, currency domain.Currency, amount decimal.Decimal) error {
	if senderID == receiverID {
		return domain.ErrTransferToSelf
	}

	if amount.LessThanOrEqual(domain.MoneyZero) {
		return domain.ErrInvalidAmount
	}

	sender, err := s.customers.Read(senderID)
	if err != nil {
		return domain.ErrCustomerNotFound
	}

	if sender.Blocked {
		return domain.ErrCustomerBlocked
	}

	receiver, err := s.customers.Read(receiverID)
	if err != nil {
		return domain.ErrCustomerNotFound
	}

	if receiver.Blocked {
		return domain.ErrCustomerBlocked
	}

	if _, err := s.accounts.FindByCustomer(receiverID, currency); err != nil {
		return err
	}

	return nil
}

func (s *TransferService) reject(senderID, receiverID int64, currency domain.Currency, amount decimal.Decimal, cause error) (domain.MoneyTransaction, error) {
	if s.metrics != nil {
		s.metrics.TransfersRejected.WithLabelValues(cause.Error()).Inc()
	}

	return domain.MoneyTransaction{
		ID:         domain.UndefinedID,
		CreatedAt:  s.now(),
		Status:     domain.StatusRejected,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Currency:   currency,
		Amount:     amount,
	}, cause
}

// Read returns the transaction with the given id.
func (s *TransferService) Read(id int64) (domain.MoneyTransaction, error) {
	tx, err := s.transactions.Read(id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.MoneyTransaction{}, domain.ErrTransactionNotFound
	}

	return tx, err
}

// Pending returns a snapshot of all PENDING transactions ordered by
// ascending creation time.
func (s *TransferService) Pending() []domain.MoneyTransaction {
	return s.transactions.Select(transactionByStatus(domain.StatusPending), oldestTransactionFirst)
}
