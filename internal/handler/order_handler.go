package handler

import (
	"net/http"

	"fsanano/shop-api/internal/model"

	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	CustomerID *int             `json:"customer_id"`
	Total      *decimal.Decimal `json:"total"`
}

type CreateOrderItemRequest struct {
	Quantity *int `json:"quantity"`
	ItemID   *int `json:"item_id"`
	OrderID  *int `json:"order_id"`
}

func (h *ShopHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListOrders(r.Context())
	if err != nil {
		h.fail(w, r, err, "Order")
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

// CreateOrder stores the total the client sends; it is not recomputed from
// the order's lines.
func (h *ShopHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CustomerID == nil || req.Total == nil || !fitsInt4(req.CustomerID) {
		respondError(w, http.StatusBadRequest, "Invalid inputs")
		return
	}

	order, err := h.svc.CreateOrder(r.Context(), model.Order{CustomerID: *req.CustomerID, Total: *req.Total})
	if err != nil {
		h.fail(w, r, err, "Order")
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func (h *ShopHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err := h.svc.DeleteOrder(r.Context(), id); err != nil {
		h.fail(w, r, err, "Order")
		return
	}
	respondMessage(w, http.StatusOK, "Order deleted")
}

func (h *ShopHandler) ListOrderItems(w http.ResponseWriter, r *http.Request) {
	lines, err := h.svc.ListOrderItems(r.Context())
	if err != nil {
		h.fail(w, r, err, "OrderItem")
		return
	}
	respondJSON(w, http.StatusOK, lines)
}

func (h *ShopHandler) GetOrderItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "OrderItem not found")
		return
	}
	line, err := h.svc.GetOrderItem(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "OrderItem")
		return
	}
	respondJSON(w, http.StatusOK, line)
}

func (h *ShopHandler) CreateOrderItem(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderItemRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Quantity == nil || req.ItemID == nil || req.OrderID == nil || !fitsInt4(req.Quantity, req.ItemID, req.OrderID) {
		respondError(w, http.StatusBadRequest, "Invalid inputs")
		return
	}

	line, err := h.svc.CreateOrderItem(r.Context(), model.OrderItem{
		Quantity: *req.Quantity,
		ItemID:   *req.ItemID,
		OrderID:  *req.OrderID,
	})
	if err != nil {
		h.fail(w, r, err, "OrderItem")
		return
	}
	respondJSON(w, http.StatusCreated, line)
}

func (h *ShopHandler) UpdateOrderItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "OrderItem not found")
		return
	}
	var patch model.OrderItemPatch
	if err := decodeBody(r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !fitsInt4(patch.Quantity, patch.OrderID, patch.ItemID) {
		respondError(w, http.StatusBadRequest, "Invalid data")
		return
	}

	line, err := h.svc.UpdateOrderItem(r.Context(), id, patch)
	if err != nil {
		h.fail(w, r, err, "OrderItem")
		return
	}
	respondJSON(w, http.StatusOK, line)
}

func (h *ShopHandler) DeleteOrderItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "OrderItem not found")
		return
	}
	if err := h.svc.DeleteOrderItem(r.Context(), id); err != nil {
		h.fail(w, r, err, "OrderItem")
		return
	}
	respondMessage(w, http.StatusOK, "OrderItem deleted successfully")
}
