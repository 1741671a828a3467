package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/petclub-shop/internal/domain"
)

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, order domain.Order) error
}

type OrderRepository interface {
	OrderPlacer
	GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error)
}

// Notifier is told about placed orders; delivery semantics are up to the implementation.
type Notifier interface {
	OrderPlaced(ctx context.Context, order domain.Order) error
}
