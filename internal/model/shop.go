package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Username     string          `json:"username"`
	PasswordHash string          `json:"-"`
	Wallet       decimal.Decimal `json:"wallet"`
	Admin        bool            `json:"admin"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    *time.Time      `json:"updated_at"`
}

type Item struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ImgURL      string `json:"img_url"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       int    `json:"price"`
}

type Order struct {
	ID         int             `json:"id"`
	CustomerID int             `json:"customer_id"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  *time.Time      `json:"updated_at"`
}

// OrderItem is a line of an order. Item is filled in when the row is loaded
// together with its catalogue entry.
type OrderItem struct {
	ID        int        `json:"id"`
	Quantity  int        `json:"quantity"`
	OrderID   int        `json:"order_id"`
	ItemID    int        `json:"item_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`

	Item *Item `json:"-"`
}
