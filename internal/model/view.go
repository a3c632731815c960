package model

import "time"

// Views are the only shapes written to clients. Each relationship is expanded
// in one direction only, so no view can recurse back into its parent.

type ItemSummary struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ImgURL      string `json:"img_url"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       int    `json:"price"`
}

type ItemDetail struct {
	ItemSummary
	OrderItems []OrderItemSummary `json:"order_items"`
}

type OrderItemSummary struct {
	ID        int        `json:"id"`
	Quantity  int        `json:"quantity"`
	OrderID   int        `json:"order_id"`
	ItemID    int        `json:"item_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type OrderItemView struct {
	OrderItemSummary
	Item *ItemSummary `json:"item"`
}

type OrderView struct {
	ID         int             `json:"id"`
	CustomerID int             `json:"customer_id"`
	Total      Money           `json:"total"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  *time.Time      `json:"updated_at"`
	OrderItems []OrderItemView `json:"order_items"`
}

type CustomerView struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	Username  string      `json:"username"`
	Wallet    Money       `json:"wallet"`
	Admin     bool        `json:"admin"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt *time.Time  `json:"updated_at"`
	Orders    []OrderView `json:"orders"`
}

func NewItemSummary(it Item) ItemSummary {
	return ItemSummary{
		ID:          it.ID,
		Title:       it.Title,
		ImgURL:      it.ImgURL,
		Description: it.Description,
		Category:    it.Category,
		Price:       it.Price,
	}
}

func NewItemSummaries(items []Item) []ItemSummary {
	out := make([]ItemSummary, 0, len(items))
	for _, it := range items {
		out = append(out, NewItemSummary(it))
	}
	return out
}

// NewItemDetail renders it with whichever of lines reference it.
func NewItemDetail(it Item, lines []OrderItem) ItemDetail {
	d := ItemDetail{
		ItemSummary: NewItemSummary(it),
		OrderItems:  make([]OrderItemSummary, 0, len(lines)),
	}
	for _, l := range lines {
		if l.ItemID == it.ID {
			d.OrderItems = append(d.OrderItems, NewOrderItemSummary(l))
		}
	}
	return d
}

func NewItemDetails(items []Item, lines []OrderItem) []ItemDetail {
	out := make([]ItemDetail, 0, len(items))
	for _, it := range items {
		out = append(out, NewItemDetail(it, lines))
	}
	return out
}

func NewOrderItemSummary(oi OrderItem) OrderItemSummary {
	return OrderItemSummary{
		ID:        oi.ID,
		Quantity:  oi.Quantity,
		OrderID:   oi.OrderID,
		ItemID:    oi.ItemID,
		CreatedAt: oi.CreatedAt,
		UpdatedAt: oi.UpdatedAt,
	}
}

func NewOrderItemView(oi OrderItem) OrderItemView {
	v := OrderItemView{OrderItemSummary: NewOrderItemSummary(oi)}
	if oi.Item != nil {
		s := NewItemSummary(*oi.Item)
		v.Item = &s
	}
	return v
}

func NewOrderItemViews(lines []OrderItem) []OrderItemView {
	out := make([]OrderItemView, 0, len(lines))
	for _, l := range lines {
		out = append(out, NewOrderItemView(l))
	}
	return out
}

// NewOrderView renders o with whichever of lines belong to it.
func NewOrderView(o Order, lines []OrderItem) OrderView {
	v := OrderView{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Total:      NewMoney(o.Total),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
		OrderItems: []OrderItemView{},
	}
	for _, l := range lines {
		if l.OrderID == o.ID {
			v.OrderItems = append(v.OrderItems, NewOrderItemView(l))
		}
	}
	return v
}

func NewOrderViews(orders []Order, lines []OrderItem) []OrderView {
	byOrder := make(map[int][]OrderItem)
	for _, l := range lines {
		byOrder[l.OrderID] = append(byOrder[l.OrderID], l)
	}
	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderView(o, byOrder[o.ID]))
	}
	return out
}

// NewCustomerView renders c with its orders picked out of orders. The password
// hash has no field here.
func NewCustomerView(c Customer, orders []Order, lines []OrderItem) CustomerView {
	own := make([]Order, 0)
	for _, o := range orders {
		if o.CustomerID == c.ID {
			own = append(own, o)
		}
	}
	return CustomerView{
		ID:        c.ID,
		Name:      c.Name,
		Username:  c.Username,
		Wallet:    NewMoney(c.Wallet),
		Admin:     c.Admin,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Orders:    NewOrderViews(own, lines),
	}
}

func NewCustomerViews(customers []Customer, orders []Order, lines []OrderItem) []CustomerView {
	out := make([]CustomerView, 0, len(customers))
	for _, c := range customers {
		out = append(out, NewCustomerView(c, orders, lines))
	}
	return out
}
