package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const productColumns = `id, name, description, brand, image, category, pet_types, pet_size,
       price, promotional_price, is_promotion, in_stock, is_new, featured, specifications`

const effectivePrice = `(CASE WHEN is_promotion AND promotional_price IS NOT NULL THEN promotional_price ELSE price END)`

// ListProductsParams holds optional criteria; nil or false means no constraint.
type ListProductsParams struct {
	PetType     *string
	Category    *string
	Brand       *string
	PetSize     *string
	MinPrice    decimal.NullDecimal
	MaxPrice    decimal.NullDecimal
	InPromotion bool
	InStock     bool
}

func (q *Queries) ListProducts(ctx context.Context, arg ListProductsParams) ([]Product, error) {
	var (
		conditions []string
		args       []interface{}
	)

	add := func(condition string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if arg.PetType != nil {
		add("$%d = ANY(pet_types)", *arg.PetType)
	}
	if arg.Category != nil {
		add("category = $%d", *arg.Category)
	}
	if arg.Brand != nil {
		add("brand = $%d", *arg.Brand)
	}
	if arg.PetSize != nil {
		add("pet_size = $%d", *arg.PetSize)
	}
	if arg.MinPrice.Valid {
		add(effectivePrice+" >= $%d", arg.MinPrice.Decimal)
	}
	if arg.MaxPrice.Valid {
		add(effectivePrice+" <= $%d", arg.MaxPrice.Decimal)
	}
	if arg.InPromotion {
		conditions = append(conditions, "is_promotion")
	}
	if arg.InStock {
		conditions = append(conditions, "in_stock > 0")
	}

	query := "SELECT " + productColumns + "\nFROM products"
	if len(conditions) > 0 {
		query += "\nWHERE " + strings.Join(conditions, "\n  AND ")
	}
	query += "\nORDER BY sort_order"

	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Product
	for rows.Next() {
		i, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getProduct = `-- name: GetProduct :one
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`

func (q *Queries) GetProduct(ctx context.Context, id uuid.UUID) (Product, error) {
	return scanProduct(q.db.QueryRow(ctx, getProduct, id))
}

const upsertProduct = `-- name: UpsertProduct :exec
INSERT INTO products (id, name, description, brand, image, category, pet_types, pet_size,
                      price, promotional_price, is_promotion, in_stock, is_new, featured, specifications)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
ON CONFLICT (id) DO UPDATE
    SET name              = EXCLUDED.name,
        description       = EXCLUDED.description,
        brand             = EXCLUDED.brand,
        image             = EXCLUDED.image,
        category          = EXCLUDED.category,
        pet_types         = EXCLUDED.pet_types,
        pet_size          = EXCLUDED.pet_size,
        price             = EXCLUDED.price,
        promotional_price = EXCLUDED.promotional_price,
        is_promotion      = EXCLUDED.is_promotion,
        in_stock          = EXCLUDED.in_stock,
        is_new            = EXCLUDED.is_new,
        featured          = EXCLUDED.featured,
        specifications    = EXCLUDED.specifications,
        updated_at        = NOW()
`

type UpsertProductParams = Product

func (q *Queries) UpsertProduct(ctx context.Context, arg UpsertProductParams) error {
	_, err := q.db.Exec(ctx, upsertProduct,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.Brand,
		arg.Image,
		arg.Category,
		arg.PetTypes,
		arg.PetSize,
		arg.Price,
		arg.PromotionalPrice,
		arg.IsPromotion,
		arg.InStock,
		arg.IsNew,
		arg.Featured,
		arg.Specifications,
	)
	return err
}

func scanProduct(row pgx.Row) (Product, error) {
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.Brand,
		&i.Image,
		&i.Category,
		&i.PetTypes,
		&i.PetSize,
		&i.Price,
		&i.PromotionalPrice,
		&i.IsPromotion,
		&i.InStock,
		&i.IsNew,
		&i.Featured,
		&i.Specifications,
	)
	return i, err
}
