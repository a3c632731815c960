package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"fsanano/shop-api/internal/model"
	"fsanano/shop-api/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type AuthService interface {
	Signup(ctx context.Context, in service.SignupInput) (*service.Session, error)
	Login(ctx context.Context, username, password string) (*service.Session, error)
	Authenticate(ctx context.Context, token string) (*model.Customer, error)
	CustomerView(ctx context.Context, c *model.Customer) (model.CustomerView, error)
}

type AuthHandler struct {
	svc    AuthService
	logger *logrus.Logger
}

func NewAuthHandler(svc AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, logger: logger}
}

type SignupRequest struct {
	Name     *string          `json:"name"`
	Username *string          `json:"username"`
	Wallet   *decimal.Decimal `json:"wallet"`
	Password *string          `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SessionResponse struct {
	User        model.CustomerView `json:"user"`
	AccessToken string             `json:"access_token"`
	Admin       bool               `json:"admin"`
}

// Signup answers every failure, duplicates included, with the same 400. The
// real cause only goes to the log.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := decodeBody(r, &req); err != nil {
		h.logger.WithError(err).Warn("Signup rejected: bad body")
		respondError(w, http.StatusBadRequest, "Invalid inputs")
		return
	}
	if req.Name == nil || req.Username == nil || req.Wallet == nil || req.Password == nil {
		h.logger.Warn("Signup rejected: missing field")
		respondError(w, http.StatusBadRequest, "Invalid inputs")
		return
	}

	session, err := h.svc.Signup(r.Context(), service.SignupInput{
		Name:     *req.Name,
		Username: *req.Username,
		Password: *req.Password,
		Wallet:   *req.Wallet,
	})
	if err != nil {
		h.logger.WithError(err).WithField("username", *req.Username).Warn("Signup failed")
		respondError(w, http.StatusBadRequest, "Invalid inputs")
		return
	}

	h.logger.WithField("customer_id", session.Customer.ID).Info("Customer signed up")
	respondJSON(w, http.StatusCreated, newSessionResponse(session))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "incorrect credentials")
			return
		}
		h.logger.WithError(err).Error("Login failed")
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, newSessionResponse(session))
}

func (h *AuthHandler) CheckSession(w http.ResponseWriter, r *http.Request) {
	customer, ok := CurrentCustomer(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	view, err := h.svc.CustomerView(r.Context(), customer)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load session customer")
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// Logout only acknowledges. Tokens are not revoked server side, so the
// client is expected to discard its copy.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

type customerKey struct{}

// RequireAuth resolves the bearer token to a customer and stores it in the
// request context. Missing, malformed or expired tokens get a 401.
func (h *AuthHandler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			respondError(w, http.StatusUnauthorized, "Missing Authorization Header")
			return
		}

		customer, err := h.svc.Authenticate(r.Context(), token)
		if err != nil {
			if errors.Is(err, model.ErrInvalidCredentials) {
				h.logger.WithError(err).Debug("Rejected bearer token")
				respondError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			h.logger.WithError(err).Error("Failed to authenticate request")
			respondError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		ctx := context.WithValue(r.Context(), customerKey{}, customer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func CurrentCustomer(ctx context.Context) (*model.Customer, bool) {
	c, ok := ctx.Value(customerKey{}).(*model.Customer)
	return c, ok && c != nil
}

func bearerToken(r *http.Request) (string, bool) {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func newSessionResponse(s *service.Session) SessionResponse {
	return SessionResponse{
		User:        s.Customer,
		AccessToken: s.AccessToken,
		Admin:       s.Customer.Admin,
	}
}
