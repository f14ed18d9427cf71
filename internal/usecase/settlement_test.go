package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/moneyflow/internal/domain"
)

func TestSettlement_Commit(t *testing.T) {
	f := newFixture()
	sender := f.newFundedCustomer(t, domain.CurrencyRUR, "100")
	receiver := f.newFundedCustomer(t, domain.CurrencyRUR, "0")

	tx, err := f.transfers.Transfer(sender.ID, receiver.ID, domain.CurrencyRUR, money("100"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if processed := f.settlement.SettleOnce(); processed != 1 {
		t.Fatalf("expected 1 processed, got %d", processed)
	}

	if got := f.balance(t, sender.ID, domain.CurrencyRUR); !got.Equal(domain.MoneyZero) {
		t.Errorf("expected sender balance 0, got %s", got)
	}

	if got := f.balance(t, receiver.ID, domain.CurrencyRUR); !got.Equal(money("100")) {
		t.Errorf("expected receiver balance 100, got %s", got)
	}

	settled, err := f.transfers.Read(tx.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settled.Status != domain.StatusCommit {
		t.Errorf("expected COMMIT, got %s", settled.Status)
	}
}

func TestSettlement_RollbackDeletedReceiverAccount(t *testing.T) {
	f := newFixture()
	sender := f.newFundedCustomer(t, domain.CurrencyRUR, "100")
	receiver := f.newFundedCustomer(t, domain.CurrencyRUR, "0")

	tx, err := f.transfers.Transfer(sender.ID, receiver.ID, domain.CurrencyRUR, money("100"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The receiver account vanishes between acceptance and settlement.
	if _, err := f.accounts.DeleteByCustomer(receiver.ID, domain.CurrencyRUR); err != nil {
		t.Fatalf("failed to delete account: %v", err)
	}

	f.settlement.SettleOnce()

	if got := f.balance(t, sender.ID, domain.CurrencyRUR); !got.Equal(money("100")) {
		t.Errorf("expected the reservation refunded, got %s", got)
	}

	settled, _ := f.transfers.Read(tx.ID)
	if settled.Status != domain.StatusRollback {
		t.Errorf("expected ROLLBACK, got %s", settled.Status)
	}
}

func TestSettlement_RollbackReceiverBlockedAfterAccept(t *testing.T) {
	f := newFixture()
	sender := f.newFundedCustomer(t, domain.CurrencyRUR, "100")
	receiver := f.newFundedCustomer(t, domain.CurrencyRUR, "0")

	tx, err := f.transfers.Transfer(sender.ID, receiver.ID, domain.CurrencyRUR, money("60"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Blocking after acceptance does not stop the sweep, only its outcome.
	if _, err := f.customers.Block(receiver.ID); err != nil {
		t.Fatalf("failed to block receiver: %v", err)
	}

	f.settlement.SettleOnce()

	if got := f.balance(t, sender.ID, domain.CurrencyRUR); !got.Equal(money("100")) {
		t.Errorf("expected the reservation refunded, got %s", got)
	}

	if got := f.balance(t, receiver.ID, domain.CurrencyRUR); !got.Equal(domain.MoneyZero) {
		t.Errorf("blocked receiver must not be credited, got %s", got)
	}

	settled, _ := f.transfers.Read(tx.ID)
	if settled.Status != domain.StatusRollback {
		t.Errorf("expected ROLLBACK, got %s", settled.Status)
	}
}

// A failed refund is a dead end: the transaction stays in LOCK and no
// later sweep picks it up again.
func TestSettlement_StuckWhenRefundImpossible(t *testing.T) {
	f := newFixture()
	sender := f.newFundedCustomer(t, domain.CurrencyRUR, "100")
	receiver := f.newFundedCustomer(t, domain.CurrencyRUR, "0")

	tx, err := f.transfers.Transfer(sender.ID, receiver.ID, domain.CurrencyRUR, money("100"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Both accounts vanish: the deposit fails and so does the refund.
	if _, err := f.accounts.DeleteByCustomer(receiver.ID, domain.CurrencyRUR); err != nil {
		t.Fatalf("failed to delete receiver account: %v", err)
	}
	if _, err := f.accounts.DeleteByCustomer(sender.ID, domain.CurrencyRUR); err != nil {
		t.Fatalf("failed to delete sender account: %v", err)
	}

	if processed := f.settlement.SettleOnce(); processed != 1 {
		t.Fatalf("expected 1 processed, got %d", processed)
	}

	stuck, _ := f.transfers.Read(tx.ID)
	if stuck.Status != domain.StatusLock {
		t.Errorf("expected LOCK, got %s", stuck.Status)
	}

	// LOCK is not PENDING: the next sweep sees nothing to do.
	if processed := f.settlement.SettleOnce(); processed != 0 {
		t.Errorf("expected 0 processed on the second sweep, got %d", processed)
	}
}

func TestSettlement_MultipleTransfersConserveMoney(t *testing.T) {
	f := newFixture()
	sender := f.newFundedCustomer(t, domain.CurrencyRUR, "1101")
	receiver := f.newFundedCustomer(t, domain.CurrencyRUR, "0")

	for _, amount := range []string{"1000", "100", "1"} {
		if _, err := f.transfers.Transfer(sender.ID, receiver.ID, domain.CurrencyRUR, money(amount)); err != nil {
			t.Fatalf("transfer of %s failed: %v", amount, err)
		}
	}

	if processed := f.settlement.SettleOnce(); processed != 3 {
		t.Fatalf("expected 3 processed, got %d", processed)
	}

	senderBalance := f.balance(t, sender.ID, domain.CurrencyRUR)
	receiverBalance := f.balance(t, receiver.ID, domain.CurrencyRUR)

	if !senderBalance.Equal(domain.MoneyZero) {
		t.Errorf("expected sender balance 0, got %s", senderBalance)
	}

	if !receiverBalance.Equal(money("1101.0000")) {
		t.Errorf("expected receiver balance 1101.0000, got %s", receiverBalance)
	}

	total := domain.SumAmounts([]decimal.Decimal{senderBalance, receiverBalance})
	if !total.Equal(money("1101")) {
		t.Errorf("money was created or destroyed: total %s", total)
	}
}

func TestSettlement_EmptySweep(t *testing.T) {
	f := newFixture()

	if processed := f.settlement.SettleOnce(); processed != 0 {
		t.Fatalf("expected 0 processed, got %d", processed)
	}
}

// A transaction accepted mid-life of the system settles independently of
// transactions already in a terminal state.
func TestSettlement_TerminalTransactionsUntouched(t *testing.T) {
	f := newFixture()
	sender := f.newFundedCustomer(t, domain.CurrencyRUR, "50")
	receiver := f.newFundedCustomer(t, domain.CurrencyRUR, "0")

	first, err := f.transfers.Transfer(sender.ID, receiver.ID, domain.CurrencyRUR, money("20"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.settlement.SettleOnce()

	second, err := f.transfers.Transfer(sender.ID, receiver.ID, domain.CurrencyRUR, money("30"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if processed := f.settlement.SettleOnce(); processed != 1 {
		t.Fatalf("expected only the new transaction processed, got %d", processed)
	}

	firstTx, _ := f.transfers.Read(first.ID)
	secondTx, _ := f.transfers.Read(second.ID)

	if firstTx.Status != domain.StatusCommit || secondTx.Status != domain.StatusCommit {
		t.Errorf("expected both COMMIT, got %s and %s", firstTx.Status, secondTx.Status)
	}

	if got := f.balance(t, receiver.ID, domain.CurrencyRUR); !got.Equal(money("50")) {
		t.Errorf("expected receiver balance 50, got %s", got)
	}
}
