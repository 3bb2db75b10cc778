package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Image references a brew picture served by the file host.
type Image struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
}

// Brew is a coffee product listed in the storefront.
type Brew struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	Currency    string    `json:"currency"`
	Image       Image     `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PriceDecimal returns the unit price in major currency units.
func (b Brew) PriceDecimal() decimal.Decimal {
	return decimal.New(b.PriceCents, -2)
}
