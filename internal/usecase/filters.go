package usecase

import "github.com/iho/moneyflow/internal/domain"

// Store predicates and comparators shared by the services. Every lookup
// that resolves a (customer, currency) pair goes through these so the
// unique-match rule is applied the same way everywhere.

func accountByCustomerAndCurrency(customerID int64, currency domain.Currency) func(domain.Account) bool {
	return func(a domain.Account) bool {
		return a.CustomerID == customerID && a.Currency == currency
	}
}

func transactionByStatus(status domain.TransactionStatus) func(domain.MoneyTransaction) bool {
	return func(t domain.MoneyTransaction) bool {
		return t.Status == status
	}
}

// oldestAccountFirst orders by creation time, ties broken by id so the
// order is deterministic across scans of the unordered store.
func oldestAccountFirst(a, b domain.Account) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID < b.ID
	}

	return a.CreatedAt.Before(b.CreatedAt)
}

func oldestTransactionFirst(a, b domain.MoneyTransaction) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID < b.ID
	}

	return a.CreatedAt.Before(b.CreatedAt)
}
