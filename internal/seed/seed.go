// Package seed loads the demo catalogue, customers and orders into an empty
// database.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"fsanano/shop-api/internal/model"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed fixture.yaml
var defaultFixture []byte

type Fixture struct {
	Items     []FixtureItem     `yaml:"items"`
	Customers []FixtureCustomer `yaml:"customers"`
	Orders    []FixtureOrder    `yaml:"orders"`
}

type FixtureItem struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Price       int    `yaml:"price"`
	ImgURL      string `yaml:"img_url"`
}

type FixtureCustomer struct {
	Name     string          `yaml:"name"`
	Username string          `yaml:"username"`
	Password string          `yaml:"password"`
	Wallet   decimal.Decimal `yaml:"wallet"`
	Admin    bool            `yaml:"admin"`
}

// FixtureOrder refers to its customer by username and to items by title.
type FixtureOrder struct {
	Customer string          `yaml:"customer"`
	Total    decimal.Decimal `yaml:"total"`
	Lines    []FixtureLine   `yaml:"lines"`
}

type FixtureLine struct {
	Item     string `yaml:"item"`
	Quantity int    `yaml:"quantity"`
}

// Store is the slice of the repository seeding writes through.
type Store interface {
	RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error
	Truncate(ctx context.Context) error
	CreateItem(ctx context.Context, it *model.Item) error
	CreateCustomer(ctx context.Context, c *model.Customer) error
	CreateOrder(ctx context.Context, o *model.Order) error
	CreateOrderItem(ctx context.Context, oi *model.OrderItem) error
}

type Hasher interface {
	Hash(password string) (string, error)
}

func DefaultFixture() (*Fixture, error) {
	return Parse(defaultFixture)
}

func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	return &f, nil
}

// Apply wipes every table and writes f in one transaction.
func Apply(ctx context.Context, store Store, hasher Hasher, f *Fixture, logger *logrus.Logger) error {
	return store.RunAtomic(ctx, func(ctx context.Context) error {
		if err := store.Truncate(ctx); err != nil {
			return err
		}

		itemIDs := make(map[string]int, len(f.Items))
		for _, fi := range f.Items {
			it := model.Item{
				Title:       fi.Title,
				ImgURL:      fi.ImgURL,
				Description: fi.Description,
				Category:    fi.Category,
				Price:       fi.Price,
			}
			if err := store.CreateItem(ctx, &it); err != nil {
				return fmt.Errorf("item %q: %w", fi.Title, err)
			}
			itemIDs[it.Title] = it.ID
		}
		logger.WithField("count", len(itemIDs)).Info("Seeded items")

		customerIDs := make(map[string]int, len(f.Customers))
		for _, fc := range f.Customers {
			hash, err := hasher.Hash(fc.Password)
			if err != nil {
				return err
			}
			c := model.Customer{
				Name:         fc.Name,
				Username:     fc.Username,
				PasswordHash: hash,
				Wallet:       fc.Wallet,
				Admin:        fc.Admin,
			}
			if err := store.CreateCustomer(ctx, &c); err != nil {
				return fmt.Errorf("customer %q: %w", fc.Username, err)
			}
			customerIDs[c.Username] = c.ID
		}
		logger.WithField("count", len(customerIDs)).Info("Seeded customers")

		lines := 0
		for i, fo := range f.Orders {
			customerID, ok := customerIDs[fo.Customer]
			if !ok {
				return fmt.Errorf("order %d: unknown customer %q", i, fo.Customer)
			}
			o := model.Order{CustomerID: customerID, Total: fo.Total}
			if err := store.CreateOrder(ctx, &o); err != nil {
				return fmt.Errorf("order %d: %w", i, err)
			}

			for _, fl := range fo.Lines {
				itemID, ok := itemIDs[fl.Item]
				if !ok {
					return fmt.Errorf("order %d: unknown item %q", i, fl.Item)
				}
				oi := model.OrderItem{Quantity: fl.Quantity, OrderID: o.ID, ItemID: itemID}
				if err := store.CreateOrderItem(ctx, &oi); err != nil {
					return fmt.Errorf("order %d line %q: %w", i, fl.Item, err)
				}
				lines++
			}
		}
		logger.WithFields(logrus.Fields{
			"orders":      len(f.Orders),
			"order_items": lines,
		}).Info("Seeded orders")

		return nil
	})
}
