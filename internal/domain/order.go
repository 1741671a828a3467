package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrOrderExists   = errors.New("order already exists")
)

// Order is the immutable snapshot handed to order placement.
type Order struct {
	ID       uuid.UUID
	Items    []OrderItem
	Customer CustomerInfo
	Delivery DeliveryMethod
	Payment  PaymentMethod

	Subtotal    Money
	DeliveryFee Money
	Total       Money

	CreatedAt time.Time
}

type OrderItem struct {
	ProductID uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}
