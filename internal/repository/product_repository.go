package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/petclub-shop/internal/db"
	"github.com/nikolayk812/petclub-shop/internal/domain"
	"github.com/nikolayk812/petclub-shop/internal/port"
)

type productRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewProducts(pool *pgxpool.Pool) (port.ProductRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &productRepository{
		q:    db.New(pool),
		pool: pool,
	}, nil
}

func NewProductsWithTx(tx pgx.Tx) port.ProductRepository {
	return &productRepository{
		q:    db.New(tx),
		pool: nil,
	}
}

func (r *productRepository) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	rows, err := r.q.ListProducts(ctx, mapFilterToParams(filter))
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	products, err := mapProductRowsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapProductRowsToDomain: %w", err)
	}

	return products, nil
}

func (r *productRepository) GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	if id == uuid.Nil {
		return domain.Product{}, fmt.Errorf("id is empty")
	}

	row, err := r.q.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, fmt.Errorf("product[%s]: %w", id, domain.ErrProductNotFound)
		}
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", err)
	}

	product, err := mapProductRowToDomain(row)
	if err != nil {
		return domain.Product{}, fmt.Errorf("mapProductRowToDomain: %w", err)
	}

	return product, nil
}

// SaveProducts upserts all products in one transaction; an invalid product rejects the batch.
func (r *productRepository) SaveProducts(ctx context.Context, products []domain.Product) error {
	params := make([]db.UpsertProductParams, 0, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("p.Validate: %w", err)
		}

		param, err := mapProductToParams(p)
		if err != nil {
			return fmt.Errorf("mapProductToParams: %w", err)
		}
		params = append(params, param)
	}

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		for _, param := range params {
			if err := q.UpsertProduct(ctx, param); err != nil {
				return struct{}{}, fmt.Errorf("q.UpsertProduct[%s]: %w", param.ID, err)
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}
