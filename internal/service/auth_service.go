package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fsanano/shop-api/internal/model"

	"github.com/shopspring/decimal"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
	CompareMissing(password string)
}

type TokenIssuer interface {
	Issue(customerID int) (string, error)
	Verify(raw string) (int, error)
}

type SignupInput struct {
	Name     string
	Username string
	Password string
	Wallet   decimal.Decimal
}

// Session is what signup and login hand back to the client.
type Session struct {
	Customer    model.CustomerView
	AccessToken string
}

type AuthService struct {
	repo   Store
	hasher PasswordHasher
	tokens TokenIssuer
}

func NewAuthService(repo Store, hasher PasswordHasher, tokens TokenIssuer) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens}
}

// Signup creates a non-admin customer and logs it in.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*Session, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: name, username and password are required", model.ErrInvalidInput)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	c := &model.Customer{
		Name:         in.Name,
		Username:     in.Username,
		PasswordHash: hash,
		Wallet:       in.Wallet,
		Admin:        false,
	}
	if err := s.repo.CreateCustomer(ctx, c); err != nil {
		return nil, err
	}

	return s.session(ctx, c)
}

// Login checks username and password. Both an unknown username and a wrong
// password come back as model.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	c, err := s.repo.GetCustomerByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.hasher.CompareMissing(password)
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Compare(c.PasswordHash, password) {
		return nil, model.ErrInvalidCredentials
	}

	return s.session(ctx, c)
}

// Authenticate resolves a bearer token to the customer it was issued for.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*model.Customer, error) {
	id, err := s.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidCredentials, err)
	}

	c, err := s.repo.GetCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %d no longer exists", model.ErrInvalidCredentials, id)
		}
		return nil, err
	}
	return c, nil
}

func (s *AuthService) CustomerView(ctx context.Context, c *model.Customer) (model.CustomerView, error) {
	return customerView(ctx, s.repo, c)
}

func (s *AuthService) session(ctx context.Context, c *model.Customer) (*Session, error) {
	token, err := s.tokens.Issue(c.ID)
	if err != nil {
		return nil, err
	}

	view, err := customerView(ctx, s.repo, c)
	if err != nil {
		return nil, err
	}

	return &Session{Customer: view, AccessToken: token}, nil
}
