package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"fsanano/shop-api/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// ShopService is the catalogue, order and customer surface the handlers call.
type ShopService interface {
	ListItems(ctx context.Context) ([]model.ItemSummary, error)
	ListItemsByCategory(ctx context.Context, category string) ([]model.ItemDetail, error)
	GetItem(ctx context.Context, id int) (model.ItemSummary, error)
	CreateItem(ctx context.Context, it model.Item) (model.ItemDetail, error)
	UpdateItem(ctx context.Context, id int, p model.ItemPatch) (model.ItemDetail, error)
	DeleteItem(ctx context.Context, id int) error

	ListOrders(ctx context.Context) ([]model.OrderView, error)
	CreateOrder(ctx context.Context, o model.Order) (model.OrderView, error)
	DeleteOrder(ctx context.Context, id int) error

	ListOrderItems(ctx context.Context) ([]model.OrderItemView, error)
	GetOrderItem(ctx context.Context, id int) (model.OrderItemView, error)
	CreateOrderItem(ctx context.Context, oi model.OrderItem) (model.OrderItemView, error)
	UpdateOrderItem(ctx context.Context, id int, p model.OrderItemPatch) (model.OrderItemView, error)
	DeleteOrderItem(ctx context.Context, id int) error

	ListCustomers(ctx context.Context) ([]model.CustomerView, error)
	GetCustomer(ctx context.Context, id int) (model.CustomerView, error)
	UpdateCustomer(ctx context.Context, id int, p model.CustomerPatch) (model.CustomerView, error)
	DeleteCustomer(ctx context.Context, id int) error
}

type ShopHandler struct {
	svc    ShopService
	logger *logrus.Logger
}

func NewShopHandler(svc ShopService, logger *logrus.Logger) *ShopHandler {
	return &ShopHandler{svc: svc, logger: logger}
}

// fail maps a service error onto a status code. entity names the record in
// the not found message, e.g. "Item not found".
func (h *ShopHandler) fail(w http.ResponseWriter, r *http.Request, err error, entity string) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		respondError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, model.ErrDuplicate):
		respondError(w, http.StatusBadRequest, entity+" already exists")
	case errors.Is(err, model.ErrInvalidReference):
		respondError(w, http.StatusBadRequest, "Invalid reference")
	case errors.Is(err, model.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, "Invalid data")
	default:
		h.logger.WithError(err).WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Error("Store operation failed")
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// Items

type CreateItemRequest struct {
	Title       *string `json:"title"`
	ImgURL      *string `json:"img_url"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Price       *int    `json:"price"`
}

func (req CreateItemRequest) item() (model.Item, bool) {
	if req.Title == nil || req.ImgURL == nil || req.Description == nil || req.Category == nil || req.Price == nil {
		return model.Item{}, false
	}
	if !fitsInt4(req.Price) {
		return model.Item{}, false
	}
	return model.Item{
		Title:       *req.Title,
		ImgURL:      *req.ImgURL,
		Description: *req.Description,
		Category:    *req.Category,
		Price:       *req.Price,
	}, true
}

func (h *ShopHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListItems(r.Context())
	if err != nil {
		h.fail(w, r, err, "Item")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *ShopHandler) ListItemsByCategory(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListItemsByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		h.fail(w, r, err, "Item")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *ShopHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Item not found")
		return
	}
	item, err := h.svc.GetItem(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Item")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *ShopHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	item, ok := req.item()
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid inputs")
		return
	}

	created, err := h.svc.CreateItem(r.Context(), item)
	if err != nil {
		h.fail(w, r, err, "Item")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateItem only writes the columns named in model.ItemPatch; other keys in
// the body are ignored.
func (h *ShopHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Item not found")
		return
	}
	var patch model.ItemPatch
	if err := decodeBody(r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !fitsInt4(patch.Price) {
		respondError(w, http.StatusBadRequest, "Invalid data")
		return
	}

	item, err := h.svc.UpdateItem(r.Context(), id, patch)
	if err != nil {
		h.fail(w, r, err, "Item")
		return
	}
	respondJSON(w, http.StatusAccepted, item)
}

func (h *ShopHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err := h.svc.DeleteItem(r.Context(), id); err != nil {
		h.fail(w, r, err, "Item")
		return
	}
	respondMessage(w, http.StatusOK, "Item deleted")
}
