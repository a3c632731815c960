package model

import "github.com/shopspring/decimal"

// ItemPatch lists the item columns a PATCH may overwrite. Nil fields are left
// untouched.
type ItemPatch struct {
	Title       *string `json:"title"`
	ImgURL      *string `json:"img_url"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Price       *int    `json:"price"`
}

func (p ItemPatch) IsEmpty() bool {
	return p.Title == nil && p.ImgURL == nil && p.Description == nil && p.Category == nil && p.Price == nil
}

type OrderItemPatch struct {
	Quantity *int `json:"quantity"`
	OrderID  *int `json:"order_id"`
	ItemID   *int `json:"item_id"`
}

func (p OrderItemPatch) IsEmpty() bool {
	return p.Quantity == nil && p.OrderID == nil && p.ItemID == nil
}

// CustomerPatch only carries the wallet; no other customer column is writable
// through the API.
type CustomerPatch struct {
	Wallet *decimal.Decimal `json:"wallet"`
}
