// Package payment turns raw card input into a single-use payment token.
package payment

import (
	"context"

	"brewshop/internal/domain"
)

// DefaultFixedToken is Stripe's test-mode token for a valid Visa card.
const DefaultFixedToken = "tok_visa"

// Fixed hands out the same token for every card. It backs local development
// when no Stripe key is configured.
type Fixed struct {
	Token string
}

func (f Fixed) CreateToken(context.Context, domain.Card) (string, error) {
	if f.Token == "" {
		return DefaultFixedToken, nil
	}
	return f.Token, nil
}
