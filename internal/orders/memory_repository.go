package orders

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/petclub-shop/internal/domain"
	"github.com/nikolayk812/petclub-shop/internal/port"
)

type memoryRepository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]domain.Order
}

// NewMemoryRepository keeps placed orders in process memory; used with the memory cart backend.
func NewMemoryRepository() port.OrderRepository {
	return &memoryRepository{orders: make(map[uuid.UUID]domain.Order)}
}

func (r *memoryRepository) PlaceOrder(_ context.Context, order domain.Order) error {
	if order.ID == uuid.Nil {
		return fmt.Errorf("order id is empty")
	}
	if len(order.Items) == 0 {
		return fmt.Errorf("order[%s] has no items", order.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.ID]; ok {
		return fmt.Errorf("order[%s]: %w", order.ID, domain.ErrOrderExists)
	}

	order.Items = slices.Clone(order.Items)
	r.orders[order.ID] = order
	return nil
}

func (r *memoryRepository) GetOrder(_ context.Context, id uuid.UUID) (domain.Order, error) {
	if id == uuid.Nil {
		return domain.Order{}, fmt.Errorf("id is empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}

	order.Items = slices.Clone(order.Items)
	return order, nil
}
