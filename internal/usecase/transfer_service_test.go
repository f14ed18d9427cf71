package usecase_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/moneyflow/internal/domain"
)

func TestTransferService_Accept(t *testing.T) {
	f := newFixture()
	sender := f.newFundedCustomer(t, domain.CurrencyRUR, "100")
	receiver := f.newFundedCustomer(t, domain.CurrencyRUR, "0")

	tx, err := f.transfers.Transfer(sender.ID, receiver.ID, domain.CurrencyRUR, money("100"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tx.Status != domain.StatusPending {
		t.Fatalf("expected PENDING, got %s", tx.Status)
	}

	if tx.ID == domain.UndefinedID {
		t.Error("accepted transaction must carry a real id")
	}

	// The reservation: the sender is debited synchronously, the receiver
	// is untouched until settlement.
	if got := f.balance(t, sender.ID, domain.CurrencyRUR); !got.Equal(domain.MoneyZero) {
		t.Errorf("expected sender balance 0, got %s", got)
	}

	if got := f.balance(t, receiver.ID, domain.CurrencyRUR); !got.Equal(domain.MoneyZero) {
		t.Errorf("receiver must not be credited before settlement, got %s", got)
	}

	persisted, err := f.transfers.Read(tx.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if persisted.Status != domain.StatusPending {
		t.Errorf("expected persisted PENDING, got %s", persisted.Status)
	}

	pending := f.transfers.Pending()
	if len(pending) != 1 || pending[0].ID != tx.ID {
		t.Errorf("expected the transaction in the pending snapshot, got %+v", pending)
	}
}

func TestTransferService_Reject(t *testing.T) {
	f := newFixture()

	sender := f.newFundedCustomer(t, domain.CurrencyRUR, "100")
	receiver := f.newFundedCustomer(t, domain.CurrencyRUR, "0")

	blockedCustomer := f.newFundedCustomer(t, domain.CurrencyRUR, "0")
	if _, err := f.customers.Block(blockedCustomer.ID); err != nil {
		t.Fatalf("failed to block customer: %v", err)
	}

	noAccount := f.customers.Create("hash-no-account")

	tests := []struct {
		name       string
		senderID   int64
		receiverID int64
		amount     decimal.Decimal
		wantErr    error
	}{
		{name: "transfer to self", senderID: sender.ID, receiverID: sender.ID, amount: money("10"), wantErr: domain.ErrTransferToSelf},
		{name: "zero amount", senderID: sender.ID, receiverID: receiver.ID, amount: money("0"), wantErr: domain.ErrInvalidAmount},
		{name: "negative amount", senderID: sender.ID, receiverID: receiver.ID, amount: money("-1"), wantErr: domain.ErrInvalidAmount},
		{name: "unknown sender", senderID: 999, receiverID: receiver.ID, amount: money("10"), wantErr: domain.ErrCustomerNotFound},
		{name: "unknown receiver", senderID: sender.ID, receiverID: 999, amount: money("10"), wantErr: domain.ErrCustomerNotFound},
		{name: "blocked sender", senderID: blockedCustomer.ID, receiverID: receiver.ID, amount: money("10"), wantErr: domain.ErrCustomerBlocked},
		{name: "blocked receiver", senderID: sender.ID, receiverID: blockedCustomer.ID, amount: money("10"), wantErr: domain.ErrCustomerBlocked},
		{name: "receiver has no account", senderID: sender.ID, receiverID: noAccount.ID, amount: money("10"), wantErr: domain.ErrAccountNotExists},
		{name: "insufficient funds", senderID: sender.ID, receiverID: receiver.ID, amount: money("100.0001"), wantErr: domain.ErrInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := f.transfers.Transfer(tt.senderID, tt.receiverID, domain.CurrencyRUR, tt.amount)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}

			if tx.Status != domain.StatusRejected {
				t.Errorf("expected REJECTED snapshot, got %s", tx.Status)
			}

			if tx.ID != domain.UndefinedID {
				t.Errorf("rejected snapshot must carry the undefined id, got %d", tx.ID)
			}
		})
	}

	// No rejection touched any balance or left a pending transaction.
	if got := f.balance(t, sender.ID, domain.CurrencyRUR); !got.Equal(money("100")) {
		t.Errorf("expected sender balance 100, got %s", got)
	}

	if pending := f.transfers.Pending(); len(pending) != 0 {
		t.Errorf("expected no pending transactions, got %d", len(pending))
	}
}

func TestTransferService_ReadMissing(t *testing.T) {
	f := newFixture()

	if _, err := f.transfers.Read(1); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestTransferService_PendingOrder(t *testing.T) {
	f := newFixture()
	sender := f.newFundedCustomer(t, domain.CurrencyRUR, "100")
	receiver := f.newFundedCustomer(t, domain.CurrencyRUR, "0")

	first, _ := f.transfers.Transfer(sender.ID, receiver.ID, domain.CurrencyRUR, money("10"))
	second, _ := f.transfers.Transfer(sender.ID, receiver.ID, domain.CurrencyRUR, money("20"))

	pending := f.transfers.Pending()
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(pending))
	}

	if pending[0].ID != first.ID || pending[1].ID != second.ID {
		t.Errorf("expected creation order [%d %d], got [%d %d]",
			first.ID, second.ID, pending[0].ID, pending[1].ID)
	}
}
