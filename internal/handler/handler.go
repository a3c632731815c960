package handler

import (
	"io"
	"net/http"

	"fsanano/shop-api/internal/telemetry"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	router *chi.Mux

	shop *ShopHandler
	auth *AuthHandler
}

func NewHandler(logger *logrus.Logger, shop *ShopHandler, auth *AuthHandler) *Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(telemetry.RouteSpanName)
	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(newCompressor().Handler)

	h := &Handler{
		router: router,
		shop:   shop,
		auth:   auth,
	}

	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	h.router.Get("/", h.Home)
	h.router.Get("/health", h.HealthCheck)

	h.router.Post("/signup", h.auth.Signup)
	h.router.Post("/login", h.auth.Login)
	h.router.Group(func(r chi.Router) {
		r.Use(h.auth.RequireAuth)
		r.Get("/check_session", h.auth.CheckSession)
		r.Delete("/logout", h.auth.Logout)
	})

	h.router.Route("/items", func(r chi.Router) {
		r.Get("/", h.shop.ListItems)
		r.Post("/", h.shop.CreateItem)
		r.Get("/{id:[0-9]+}", h.shop.GetItem)
		r.Patch("/{id:[0-9]+}", h.shop.UpdateItem)
		r.Delete("/{id:[0-9]+}", h.shop.DeleteItem)
		r.Get("/{category}", h.shop.ListItemsByCategory)
	})

	h.router.Route("/orders", func(r chi.Router) {
		r.Get("/", h.shop.ListOrders)
		r.Post("/", h.shop.CreateOrder)
		r.Delete("/{id:[0-9]+}", h.shop.DeleteOrder)
	})

	h.router.Route("/orderitems", func(r chi.Router) {
		r.Get("/", h.shop.ListOrderItems)
		r.Post("/", h.shop.CreateOrderItem)
		r.Get("/{id:[0-9]+}", h.shop.GetOrderItem)
		r.Patch("/{id:[0-9]+}", h.shop.UpdateOrderItem)
		r.Delete("/{id:[0-9]+}", h.shop.DeleteOrderItem)
	})

	h.router.Route("/customers", func(r chi.Router) {
		r.Get("/", h.shop.ListCustomers)
		r.Get("/{id:[0-9]+}", h.shop.GetCustomer)
		r.Patch("/{id:[0-9]+}", h.shop.UpdateCustomer)
		r.Delete("/{id:[0-9]+}", h.shop.DeleteCustomer)
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, "<h1> Phase 4 Project Server </h1>")
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// newCompressor compresses JSON responses, preferring brotli when the client
// accepts it and falling back to gzip or deflate.
func newCompressor() *middleware.Compressor {
	c := middleware.NewCompressor(5, "application/json")
	c.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	return c
}
