package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"brewshop/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &postgresRepo{pool: pool, logger: logger.Named("order_repo")}
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	products, err := json.Marshal(o.Products)
	if err != nil {
		return nil, fmt.Errorf("encode order products: %w", err)
	}

	const q = `
INSERT INTO orders (id, amount, products, address, zip, city, token)
VALUES ($1::text::uuid, $2::text::numeric, $3, $4, $5, $6, $7)
RETURNING created_at
`
	res := o
	if err := r.pool.QueryRow(ctx, q,
		o.ID,
		o.Amount.StringFixed(2),
		products,
		o.Address,
		o.Zip,
		o.City,
		o.Token,
	).Scan(&res.CreatedAt); err != nil {
		r.logger.Error("create order", zap.String("id", o.ID), zap.Error(err))
		return nil, err
	}
	r.logger.Debug("created order", zap.String("id", res.ID), zap.String("amount", res.Amount.StringFixed(2)))
	return &res, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT id::text, amount::text, products, address, zip, city, token, created_at
FROM orders
WHERE id::text = $1
`
	var (
		o        domain.Order
		amount   string
		products []byte
	)
	err := r.pool.QueryRow(ctx, q, id).Scan(&o.ID, &amount, &products, &o.Address, &o.Zip, &o.City, &o.Token, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if o.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("decode order amount: %w", err)
	}
	if err := json.Unmarshal(products, &o.Products); err != nil {
		return nil, fmt.Errorf("decode order products: %w", err)
	}
	return &o, nil
}

func (r *postgresRepo) EnqueueEmail(ctx context.Context, email domain.OrderEmail) (int64, error) {
	const q = `
INSERT INTO order_emails (recipient, subject, body_text, body_html)
VALUES ($1, $2, $3, $4)
RETURNING id
`
	var id int64
	if err := r.pool.QueryRow(ctx, q, email.To, email.Subject, email.Text, email.HTML).Scan(&id); err != nil {
		r.logger.Error("enqueue order email", zap.Error(err))
		return 0, err
	}
	return id, nil
}
