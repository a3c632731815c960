package handler

import (
	"net/http"

	"fsanano/shop-api/internal/model"
)

func (h *ShopHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.ListCustomers(r.Context())
	if err != nil {
		h.fail(w, r, err, "Customer")
		return
	}
	respondJSON(w, http.StatusOK, customers)
}

func (h *ShopHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Customer not found")
		return
	}
	customer, err := h.svc.GetCustomer(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Customer")
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

// UpdateCustomer accepts only {"wallet": ...}; a body without a wallet is a
// 400 and leaves the record untouched.
func (h *ShopHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Customer not found")
		return
	}
	var patch model.CustomerPatch
	if err := decodeBody(r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid data")
		return
	}

	customer, err := h.svc.UpdateCustomer(r.Context(), id, patch)
	if err != nil {
		h.fail(w, r, err, "Customer")
		return
	}
	respondJSON(w, http.StatusAccepted, customer)
}

func (h *ShopHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Customer not found")
		return
	}
	if err := h.svc.DeleteCustomer(r.Context(), id); err != nil {
		h.fail(w, r, err, "Customer")
		return
	}
	respondMessage(w, http.StatusOK, "Customer deleted")
}
