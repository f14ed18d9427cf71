package usecase

import (
	"github.com/rs/zerolog"

	"github.com/iho/moneyflow/internal/domain"
	"github.com/iho/moneyflow/internal/store"
)

// moneyTransfer drives one PENDING transaction through the settlement
// protocol: begin marks it LOCK and attempts the receiver-side credit,
// then either commit or rollback finalizes it.
type moneyTransfer struct {
	tx           domain.MoneyTransaction
	transactions *store.Store[domain.MoneyTransaction]
	customers    *CustomerService
	accounts     *AccountService
	log          zerolog.Logger
}

// process runs the transaction to its final status. The returned status is
// COMMIT, ROLLBACK, or LOCK when the refund could not be applied.
func (m *moneyTransfer) process() domain.TransactionStatus {
	if m.begin() {
		return m.commit()
	}

	return m.rollback()
}

// begin persists the LOCK marker before the risky step, re-validates the
// receiver and credits the receiver account. It returns true only if the
// deposit succeeded.
func (m *moneyTransfer) begin() bool {
	m.tx.Status = domain.StatusLock
	m.tx = m.transactions.Update(m.tx)

	receiver, err := m.customers.Read(m.tx.ReceiverID)
	if err != nil || receiver.Blocked {
		return false
	}

	_, err = m.accounts.Deposit(m.tx.ReceiverID, m.tx.Currency, m.tx.Amount)

	return err == nil
}

func (m *moneyTransfer) commit() domain.TransactionStatus {
	m.tx.Status = domain.StatusCommit
	m.transactions.Update(m.tx)

	return domain.StatusCommit
}

// rollback refunds the reservation to the sender. If the sender account
// cannot be resolved the refund is abandoned: the error is logged and the
// transaction stays in LOCK, a known non-terminal dead end.
func (m *moneyTransfer) rollback() domain.TransactionStatus {
	if _, err := m.accounts.Deposit(m.tx.SenderID, m.tx.Currency, m.tx.Amount); err != nil {
		m.log.Error().
			Int64("transaction_id", m.tx.ID).
			Int64("sender_id", m.tx.SenderID).
			Err(err).
			Msg("unable to roll back transaction: sender account not resolved")

		return domain.StatusLock
	}

	m.tx.Status = domain.StatusRollback
	m.transactions.Update(m.tx)

	return domain.StatusRollback
}
