package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/iho/moneyflow/internal/adapter/http/dto"
	"github.com/iho/moneyflow/internal/domain"
)

// TransferService defines the behavior needed by TransferHandler.
type TransferService interface {
	Transfer(ctx context.Context, senderID, receiverID int64, currency domain.Currency, amount decimal.Decimal) (domain.MoneyTransaction, error)
	GetTransaction(ctx context.Context, id int64) (domain.MoneyTransaction, error)
}

// TransferHandler handles transfer-related HTTP requests.
type TransferHandler struct {
	transfers TransferService
}

// NewTransferHandler creates a TransferHandler.
func NewTransferHandler(transfers TransferService) *TransferHandler {
	return &TransferHandler{transfers: transfers}
}

// Create requests a money transfer. A rejected transfer answers with the
// mapped status and the REJECTED transaction snapshot in the error body.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	currency, err := req.Parse()
	if err != nil {
		writeError(w, mapDomainError(err), "invalid currency", err.Error())
		return
	}

	tx, err := h.transfers.Transfer(r.Context(), req.SenderID, req.ReceiverID, currency, req.Amount)
	if err != nil {
		resp := dto.ErrorResponse{
			Error:   "transfer rejected",
			Message: err.Error(),
		}
		if tx.Status == domain.StatusRejected {
			resp.Transaction = dto.TransactionFromDomain(tx)
		}

		writeJSON(w, mapDomainError(err), resp)

		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(tx))
}

// Get retrieves a money transaction by ID.
func (h *TransferHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction ID", err.Error())
		return
	}

	tx, err := h.transfers.GetTransaction(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(tx))
}
