package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/petclub-shop/internal/db"
	"github.com/nikolayk812/petclub-shop/internal/domain"
	"github.com/nikolayk812/petclub-shop/internal/port"
)

const uniqueViolation = "23505"

type orderRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewOrders(pool *pgxpool.Pool) (port.OrderRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &orderRepository{
		q:    db.New(pool),
		pool: pool,
	}, nil
}

func NewOrdersWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q:    db.New(tx),
		pool: nil,
	}
}

// PlaceOrder stores the order header and its items atomically.
func (r *orderRepository) PlaceOrder(ctx context.Context, order domain.Order) error {
	if order.ID == uuid.Nil {
		return fmt.Errorf("order id is empty")
	}
	if len(order.Items) == 0 {
		return fmt.Errorf("order[%s] has no items", order.ID)
	}

	header, err := mapOrderToParams(order)
	if err != nil {
		return fmt.Errorf("mapOrderToParams: %w", err)
	}

	_, err = withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		if err := q.InsertOrder(ctx, header); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return struct{}{}, fmt.Errorf("order[%s]: %w", order.ID, domain.ErrOrderExists)
			}
			return struct{}{}, fmt.Errorf("q.InsertOrder: %w", err)
		}

		for i, item := range order.Items {
			err := q.InsertOrderItem(ctx, db.InsertOrderItemParams{
				OrderID:   order.ID,
				Position:  int32(i),
				ProductID: item.ProductID,
				Name:      item.Name,
				UnitPrice: item.UnitPrice,
				Quantity:  int32(item.Quantity),
			})
			if err != nil {
				return struct{}{}, fmt.Errorf("q.InsertOrderItem[%d]: %w", i, err)
			}
		}

		return struct{}{}, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func (r *orderRepository) GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	if id == uuid.Nil {
		return domain.Order{}, fmt.Errorf("id is empty")
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Order, error) {
		header, err := q.GetOrder(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.Order{}, fmt.Errorf("order[%s]: %w", id, domain.ErrOrderNotFound)
			}
			return domain.Order{}, fmt.Errorf("q.GetOrder: %w", err)
		}

		items, err := q.GetOrderItems(ctx, id)
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.GetOrderItems: %w", err)
		}

		order, err := mapOrderRowsToDomain(header, items)
		if err != nil {
			return domain.Order{}, fmt.Errorf("mapOrderRowsToDomain: %w", err)
		}

		return order, nil
	})
}
