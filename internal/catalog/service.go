package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/petclub-shop/internal/domain"
	"github.com/nikolayk812/petclub-shop/internal/port"
)

type Facets struct {
	Brands     []string `json:"brands"`
	PriceRange Range    `json:"priceRange"`
	HasRange   bool     `json:"hasRange"`
}

type Service struct {
	source port.CatalogSource
}

func NewService(source port.CatalogSource) (*Service, error) {
	if source == nil {
		return nil, fmt.Errorf("source is nil")
	}
	return &Service{source: source}, nil
}

// Search fetches from the source and applies the filter engine on the fetched catalog.
// A failed fetch is returned as an error and never treated as an empty result.
func (s *Service) Search(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	products, err := s.source.ListProducts(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("source.ListProducts: %w", err)
	}

	return Filter(products, f), nil
}

// Facets describes the whole catalog, not the filtered subset.
func (s *Service) Facets(ctx context.Context) (Facets, error) {
	products, err := s.source.ListProducts(ctx, domain.ProductFilter{})
	if err != nil {
		return Facets{}, fmt.Errorf("source.ListProducts: %w", err)
	}

	r, ok := PriceRange(products)

	return Facets{
		Brands:     Brands(products),
		PriceRange: r,
		HasRange:   ok,
	}, nil
}

func (s *Service) Product(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	p, err := s.source.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("source.GetProduct: %w", err)
	}
	return p, nil
}
