package token

import (
	"context"
	"time"
)

// Token binds an opaque bearer token to a storefront session.
type Token struct {
	Token     string
	SessionID string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, token Token) error
	Get(ctx context.Context, token string) (*Token, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
