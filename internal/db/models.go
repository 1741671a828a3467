package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartBlob struct {
	CartKey   string
	Payload   []byte
	UpdatedAt time.Time
}

type Product struct {
	ID               uuid.UUID
	Name             string
	Description      string
	Brand            string
	Image            string
	Category         string
	PetTypes         []string
	PetSize          string
	Price            decimal.Decimal
	PromotionalPrice decimal.NullDecimal
	IsPromotion      bool
	InStock          int32
	IsNew            bool
	Featured         bool
	Specifications   []byte
}

type Order struct {
	ID                uuid.UUID
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     string
	Address           []byte
	DeliveryMethod    string
	PaymentMethod     string
	SubtotalAmount    decimal.Decimal
	DeliveryFeeAmount decimal.Decimal
	TotalAmount       decimal.Decimal
	Currency          string
	CreatedAt         time.Time
}

type OrderItem struct {
	OrderID   uuid.UUID
	Position  int32
	ProductID uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int32
}
