package db

import (
	"context"

	"github.com/google/uuid"
)

const insertOrder = `-- name: InsertOrder :exec
INSERT INTO orders (id, customer_name, customer_email, customer_phone, address, delivery_method,
                    payment_method, subtotal_amount, delivery_fee_amount, total_amount, currency, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`

type InsertOrderParams = Order

func (q *Queries) InsertOrder(ctx context.Context, arg InsertOrderParams) error {
	_, err := q.db.Exec(ctx, insertOrder,
		arg.ID,
		arg.CustomerName,
		arg.CustomerEmail,
		arg.CustomerPhone,
		arg.Address,
		arg.DeliveryMethod,
		arg.PaymentMethod,
		arg.SubtotalAmount,
		arg.DeliveryFeeAmount,
		arg.TotalAmount,
		arg.Currency,
		arg.CreatedAt,
	)
	return err
}

const insertOrderItem = `-- name: InsertOrderItem :exec
INSERT INTO order_items (order_id, position, product_id, name, unit_price, quantity)
VALUES ($1, $2, $3, $4, $5, $6)
`

type InsertOrderItemParams = OrderItem

func (q *Queries) InsertOrderItem(ctx context.Context, arg InsertOrderItemParams) error {
	_, err := q.db.Exec(ctx, insertOrderItem,
		arg.OrderID,
		arg.Position,
		arg.ProductID,
		arg.Name,
		arg.UnitPrice,
		arg.Quantity,
	)
	return err
}

const getOrder = `-- name: GetOrder :one
SELECT id, customer_name, customer_email, customer_phone, address, delivery_method,
       payment_method, subtotal_amount, delivery_fee_amount, total_amount, currency, created_at
FROM orders
WHERE id = $1
`

func (q *Queries) GetOrder(ctx context.Context, id uuid.UUID) (Order, error) {
	row := q.db.QueryRow(ctx, getOrder, id)
	var i Order
	err := row.Scan(
		&i.ID,
		&i.CustomerName,
		&i.CustomerEmail,
		&i.CustomerPhone,
		&i.Address,
		&i.DeliveryMethod,
		&i.PaymentMethod,
		&i.SubtotalAmount,
		&i.DeliveryFeeAmount,
		&i.TotalAmount,
		&i.Currency,
		&i.CreatedAt,
	)
	return i, err
}

const getOrderItems = `-- name: GetOrderItems :many
SELECT order_id, position, product_id, name, unit_price, quantity
FROM order_items
WHERE order_id = $1
ORDER BY position
`

func (q *Queries) GetOrderItems(ctx context.Context, orderID uuid.UUID) ([]OrderItem, error) {
	rows, err := q.db.Query(ctx, getOrderItems, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var i OrderItem
		if err := rows.Scan(
			&i.OrderID,
			&i.Position,
			&i.ProductID,
			&i.Name,
			&i.UnitPrice,
			&i.Quantity,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
