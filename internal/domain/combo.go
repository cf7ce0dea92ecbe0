package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// comboDiscount is the fixed factor applied to the sum of component prices.
var comboDiscount = decimal.RequireFromString("0.9")

// Product is an immutable concession item with a non-negative unit price.
type Product struct {
	ID    int
	Name  string
	Price decimal.Decimal
}

// Combo bundles products under a single discounted price. Products are
// shared references, not owned: the same product may appear in any number
// of combos.
type Combo struct {
	ID       int
	Name     string
	Products []Product
}

// AddProduct appends a product to the combo. Insertion order is preserved
// for display; it has no effect on pricing.
func (c *Combo) AddProduct(p Product) {
	c.Products = append(c.Products, p)
}

// TotalPrice computes the combo price from the live component list: the sum
// of unit prices with a 10% discount applied. The result is never cached,
// so adding a product is always reflected by the next call. An empty combo
// prices at zero.
func (c *Combo) TotalPrice() decimal.Decimal {
	total := decimal.Zero

	for _, p := range c.Products {
		total = total.Add(p.Price)
	}

	return total.Mul(comboDiscount)
}

type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetById(ctx context.Context, id int) (*Product, error)
	GetAll(ctx context.Context) ([]*Product, error)
}

type ComboRepository interface {
	Create(ctx context.Context, combo *Combo) error
	GetById(ctx context.Context, id int) (*Combo, error)
	AddProduct(ctx context.Context, comboID int, product Product) (*Combo, error)
}
