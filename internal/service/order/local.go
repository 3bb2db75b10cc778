package order

import (
	"context"
	"fmt"

	"brewshop/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type orderStore interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	EnqueueEmail(ctx context.Context, email domain.OrderEmail) (int64, error)
}

// Local is the order backend that keeps orders in the shop's own database.
// Confirmation emails land in an outbox table for a mailer to pick up.
type Local struct {
	store  orderStore
	logger *zap.Logger
	newID  func() string
}

func NewLocal(store orderStore, logger *zap.Logger) *Local {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Local{store: store, logger: logger.Named("orders"), newID: uuid.NewString}
}

func (l *Local) CreateOrder(ctx context.Context, req domain.OrderRequest) error {
	o, err := l.store.Create(ctx, domain.Order{
		ID:       l.newID(),
		Amount:   req.Amount,
		Products: req.Products,
		Address:  req.Address,
		Zip:      req.Zip,
		City:     req.City,
		Token:    req.Token,
	})
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	l.logger.Info("order created",
		zap.String("order_id", o.ID),
		zap.String("amount", o.Amount.StringFixed(2)),
		zap.Int("items", len(o.Products)),
	)
	return nil
}

func (l *Local) SendOrderEmail(ctx context.Context, email domain.OrderEmail) error {
	id, err := l.store.EnqueueEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("queue order email: %w", err)
	}
	l.logger.Info("order email queued", zap.Int64("outbox_id", id), zap.String("to", email.To))
	return nil
}
