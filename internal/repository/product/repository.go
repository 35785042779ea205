package product

import (
	"context"

	"github.com/talipby/koroglu-site/internal/domain"
)

type Repository interface {
	// List returns the whole catalog ordered by name, matching the
	// storefront's default ordering.
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
