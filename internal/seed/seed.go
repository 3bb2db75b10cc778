package seed

import (
	"context"
	"fmt"

	"brewshop/internal/domain"
)

type BrewWriter interface {
	Upsert(ctx context.Context, b domain.Brew) (*domain.Brew, error)
}

// Brews is the demo catalog used for local runs.
var Brews = []domain.Brew{
	{
		Key:         "espresso",
		Name:        "Espresso",
		Description: "A short, concentrated shot pulled from our house blend",
		PriceCents:  350,
		Currency:    "USD",
		Image:       domain.Image{URL: "/uploads/espresso.jpg", Name: "espresso.jpg"},
	},
	{
		Key:         "americano",
		Name:        "Americano",
		Description: "Espresso lengthened with hot water",
		PriceCents:  375,
		Currency:    "USD",
		Image:       domain.Image{URL: "/uploads/americano.jpg", Name: "americano.jpg"},
	},
	{
		Key:         "cappuccino",
		Name:        "Cappuccino",
		Description: "Equal parts espresso, steamed milk and foam",
		PriceCents:  425,
		Currency:    "USD",
		Image:       domain.Image{URL: "/uploads/cappuccino.jpg", Name: "cappuccino.jpg"},
	},
	{
		Key:         "mocha",
		Name:        "Mocha",
		Description: "Espresso with chocolate and steamed milk",
		PriceCents:  475,
		Currency:    "USD",
		Image:       domain.Image{URL: "/uploads/mocha.jpg", Name: "mocha.jpg"},
	},
	{
		Key:         "cold-brew",
		Name:        "Cold Brew",
		Description: "Steeped for eighteen hours and served over ice",
		PriceCents:  450,
		Currency:    "USD",
		Image:       domain.Image{URL: "/uploads/cold-brew.jpg", Name: "cold-brew.jpg"},
	},
}

// Apply upserts the demo brews. It is idempotent since brews are keyed.
func Apply(ctx context.Context, w BrewWriter) error {
	for _, b := range Brews {
		if _, err := w.Upsert(ctx, b); err != nil {
			return fmt.Errorf("upsert brew %s: %w", b.Key, err)
		}
	}
	return nil
}
