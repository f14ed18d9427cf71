package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/iho/moneyflow/internal/adapter/http/dto"
	"github.com/iho/moneyflow/internal/domain"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	CreateAccount(ctx context.Context, customerID int64, currency domain.Currency) (domain.Account, error)
	FindAccount(ctx context.Context, customerID int64, currency domain.Currency) (domain.Account, error)
	DeleteAccount(ctx context.Context, customerID int64, currency domain.Currency) (domain.Account, error)
	Deposit(ctx context.Context, customerID int64, currency domain.Currency, amount decimal.Decimal) (domain.Account, error)
	Withdraw(ctx context.Context, customerID int64, currency domain.Currency, amount decimal.Decimal) (domain.Account, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accounts AccountService
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(accounts AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Create opens a new account.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	customerID, currency, err := req.Parse()
	if err != nil {
		writeError(w, mapDomainError(err), "invalid currency", err.Error())
		return
	}

	account, err := h.accounts.CreateAccount(r.Context(), customerID, currency)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create account", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.AccountFromDomain(account))
}

// Find resolves the unique account for a (customer, currency) pair.
func (h *AccountHandler) Find(w http.ResponseWriter, r *http.Request) {
	var req dto.AccountSelectorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	customerID, currency, err := req.Parse()
	if err != nil {
		writeError(w, mapDomainError(err), "invalid currency", err.Error())
		return
	}

	account, err := h.accounts.FindAccount(r.Context(), customerID, currency)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to find account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// Delete removes the unique account for a (customer, currency) pair.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req dto.AccountSelectorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	customerID, currency, err := req.Parse()
	if err != nil {
		writeError(w, mapDomainError(err), "invalid currency", err.Error())
		return
	}

	account, err := h.accounts.DeleteAccount(r.Context(), customerID, currency)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to delete account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// Deposit credits an account.
func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.applyMoney(w, r, h.accounts.Deposit, "failed to deposit")
}

// Withdraw debits an account.
func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.applyMoney(w, r, h.accounts.Withdraw, "failed to withdraw")
}

func (h *AccountHandler) applyMoney(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, customerID int64, currency domain.Currency, amount decimal.Decimal) (domain.Account, error),
	failMsg string,
) {
	var req dto.MoneyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	customerID, currency, amount, err := req.Parse()
	if err != nil {
		writeError(w, mapDomainError(err), "invalid currency", err.Error())
		return
	}

	account, err := op(r.Context(), customerID, currency, amount)
	if err != nil {
		writeError(w, mapDomainError(err), failMsg, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}
