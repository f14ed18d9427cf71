package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/moneyflow/internal/adapter/http/dto"
	"github.com/iho/moneyflow/internal/domain"
)

// CustomerService defines the behavior needed by CustomerHandler.
type CustomerService interface {
	CreateCustomer(ctx context.Context, dataHash string) (domain.Customer, error)
	BlockCustomer(ctx context.Context, id int64) (domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (domain.Customer, error)
}

// CustomerHandler handles customer-related HTTP requests.
type CustomerHandler struct {
	customers CustomerService
}

// NewCustomerHandler creates a CustomerHandler.
func NewCustomerHandler(customers CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// Create registers a new customer.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	customer, err := h.customers.CreateCustomer(r.Context(), req.DataHash)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create customer", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CustomerFromDomain(customer))
}

// Block marks a customer as blocked.
func (h *CustomerHandler) Block(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid customer ID", err.Error())
		return
	}

	customer, err := h.customers.BlockCustomer(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to block customer", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CustomerFromDomain(customer))
}

// Get retrieves a customer by ID.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid customer ID", err.Error())
		return
	}

	customer, err := h.customers.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get customer", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CustomerFromDomain(customer))
}
