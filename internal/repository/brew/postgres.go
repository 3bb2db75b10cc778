package brew

import (
	"context"
	"errors"
	"fmt"

	"brewshop/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
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
	return &postgresRepo{pool: pool, logger: logger.Named("brew_repo")}
}

const brewColumns = `id::text, key, name, COALESCE(description, ''), price_cents, currency, image_url, image_name, created_at`

func scanBrew(row pgx.Row, b *domain.Brew) error {
	return row.Scan(&b.ID, &b.Key, &b.Name, &b.Description, &b.PriceCents, &b.Currency, &b.Image.URL, &b.Image.Name, &b.CreatedAt)
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Brew, error) {
	q := `SELECT ` + brewColumns + ` FROM brews ORDER BY created_at DESC, key`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error("list brews", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []domain.Brew
	for rows.Next() {
		var b domain.Brew
		if err := scanBrew(rows, &b); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("list brews rows", zap.Error(err))
		return nil, err
	}
	r.logger.Debug("listed brews", zap.Int("count", len(result)))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Brew, error) {
	q := `SELECT ` + brewColumns + ` FROM brews WHERE id::text = $1`
	var b domain.Brew
	if err := scanBrew(r.pool.QueryRow(ctx, q, id), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("get brew", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &b, nil
}

// Upsert inserts by key or updates the existing brew with that key.
func (r *postgresRepo) Upsert(ctx context.Context, b domain.Brew) (*domain.Brew, error) {
	const q = `
INSERT INTO brews (key, name, description, price_cents, currency, image_url, image_name)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)
ON CONFLICT (key) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    currency = EXCLUDED.currency,
    image_url = EXCLUDED.image_url,
    image_name = EXCLUDED.image_name
RETURNING id::text, created_at
`
	res := b
	err := r.pool.QueryRow(ctx, q,
		b.Key,
		b.Name,
		b.Description,
		b.PriceCents,
		b.Currency,
		b.Image.URL,
		b.Image.Name,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return nil, fmt.Errorf("brew %s: invalid price: %w", b.Key, err)
		}
		r.logger.Error("upsert brew", zap.String("key", b.Key), zap.Error(err))
		return nil, err
	}
	r.logger.Debug("upserted brew", zap.String("key", res.Key), zap.String("id", res.ID))
	return &res, nil
}
