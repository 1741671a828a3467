package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/petclub-shop/internal/domain"
)

type CatalogSource interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error)
}

// ProductRepository is a CatalogSource that can also be written to, used to seed the catalog.
type ProductRepository interface {
	CatalogSource
	SaveProducts(ctx context.Context, products []domain.Product) error
}
