package brew

import (
	"context"

	"brewshop/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Brew, error)
	GetByID(ctx context.Context, id string) (*domain.Brew, error)
	Upsert(ctx context.Context, b domain.Brew) (*domain.Brew, error)
}
