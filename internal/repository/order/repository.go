package order

import (
	"context"

	"brewshop/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	// EnqueueEmail appends a confirmation email to the outbox.
	EnqueueEmail(ctx context.Context, email domain.OrderEmail) (int64, error)
}
