package payment

import (
	"context"
	"errors"

	"brewshop/internal/domain"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/token"
	"go.uber.org/zap"
)

type Stripe struct {
	tokens token.Client
	logger *zap.Logger
}

// NewStripe tokenizes cards with the given secret key. A nil backend uses the
// live Stripe API.
func NewStripe(secretKey string, backend stripe.Backend, logger *zap.Logger) *Stripe {
	if backend == nil {
		backend = stripe.GetBackend(stripe.APIBackend)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Stripe{
		tokens: token.Client{B: backend, Key: secretKey},
		logger: logger.Named("stripe"),
	}
}

// CreateToken returns Stripe's own message on failure, for example
// "Your card was declined.".
func (s *Stripe) CreateToken(ctx context.Context, card domain.Card) (string, error) {
	params := &stripe.TokenParams{
		Card: &stripe.CardParams{
			Number:   stripe.String(card.Number),
			ExpMonth: stripe.String(card.ExpMonth),
			ExpYear:  stripe.String(card.ExpYear),
			CVC:      stripe.String(card.CVC),
		},
	}
	params.Context = ctx

	tok, err := s.tokens.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
			s.logger.Info("card tokenization rejected",
				zap.String("code", string(stripeErr.Code)),
				zap.String("request_id", stripeErr.RequestID),
			)
			return "", errors.New(stripeErr.Msg)
		}
		s.logger.Error("card tokenization failed", zap.Error(err))
		return "", err
	}
	return tok.ID, nil
}
