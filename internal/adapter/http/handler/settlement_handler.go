package handler

import (
	"context"
	"net/http"

	"github.com/iho/moneyflow/internal/adapter/http/dto"
)

// Settler triggers a settlement sweep.
type Settler interface {
	SettleOnce(ctx context.Context) (int, error)
}

// SettlementHandler exposes the settlement sweep as an operational
// endpoint, useful when the periodic runner is disabled.
type SettlementHandler struct {
	settler Settler
}

// NewSettlementHandler creates a SettlementHandler.
func NewSettlementHandler(settler Settler) *SettlementHandler {
	return &SettlementHandler{settler: settler}
}

// Run triggers one settlement sweep.
func (h *SettlementHandler) Run(w http.ResponseWriter, r *http.Request) {
	n, err := h.settler.SettleOnce(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "settlement sweep failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SettlementResponse{Processed: n})
}
