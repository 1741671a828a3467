package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/petclub-shop/internal/domain"
	"github.com/nikolayk812/petclub-shop/internal/port"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

const DefaultKey = "petclub-cart"

// Store owns the cart of one session. It is not safe for concurrent use.
type Store struct {
	storage  port.CartStorage
	key      string
	currency currency.Unit
	logger   *zap.Logger

	items []domain.CartItem
}

type Option func(*Store)

func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

func WithCurrency(unit currency.Unit) Option {
	return func(s *Store) {
		s.currency = unit
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func NewStore(storage port.CartStorage, opts ...Option) (*Store, error) {
	if storage == nil {
		return nil, fmt.Errorf("storage is nil")
	}

	s := &Store{
		storage:  storage,
		key:      DefaultKey,
		currency: domain.DefaultCurrency,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	return s, nil
}

// Load restores the persisted cart. Missing, unreadable or malformed data leaves the cart empty.
func (s *Store) Load(ctx context.Context) {
	s.items = nil

	blob, found, err := s.storage.Load(ctx, s.key)
	if err != nil {
		s.logger.Error("cart load failed, starting empty", zap.String("key", s.key), zap.Error(err))
		return
	}
	if !found {
		return
	}

	items, err := decode(blob)
	if err != nil {
		s.logger.Warn("discarding malformed cart", zap.String("key", s.key), zap.Error(err))
		return
	}

	s.items = items
}

// AddToCart increments the quantity of an existing line or appends a new one.
// A quantity below 1 adds a single unit.
func (s *Store) AddToCart(ctx context.Context, product domain.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	if i := s.indexOf(product.ID); i >= 0 {
		s.items[i].Quantity += quantity
	} else {
		s.items = append(s.items, domain.CartItem{Product: product, Quantity: quantity})
	}

	s.persist(ctx)

	s.logger.Info("product added to cart",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name),
		zap.Int("quantity", quantity))
}

func (s *Store) RemoveFromCart(ctx context.Context, productID uuid.UUID) {
	i := s.indexOf(productID)
	if i < 0 {
		return
	}

	s.items = append(s.items[:i:i], s.items[i+1:]...)
	s.persist(ctx)
}

// UpdateQuantity replaces the quantity of a line; a quantity of zero or less removes it.
func (s *Store) UpdateQuantity(ctx context.Context, productID uuid.UUID, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(ctx, productID)
		return
	}

	i := s.indexOf(productID)
	if i < 0 {
		return
	}

	s.items[i].Quantity = quantity
	s.persist(ctx)
}

func (s *Store) ClearCart(ctx context.Context) {
	s.items = nil
	s.persist(ctx)
}

func (s *Store) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Snapshot() domain.Cart {
	return domain.Cart{Items: s.Items()}
}

func (s *Store) TotalItems() int {
	return s.Snapshot().TotalItems()
}

func (s *Store) TotalPrice() domain.Money {
	return domain.NewMoney(s.Snapshot().TotalPrice(), s.currency)
}

func (s *Store) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Store) Currency() currency.Unit {
	return s.currency
}

func (s *Store) indexOf(productID uuid.UUID) int {
	for i, item := range s.items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

// persist writes the post-mutation state. Failures are logged only, mutations always succeed.
func (s *Store) persist(ctx context.Context) {
	blob, err := encode(s.items)
	if err != nil {
		s.logger.Error("cart encode failed", zap.String("key", s.key), zap.Error(err))
		return
	}

	if err := s.storage.Save(ctx, s.key, blob); err != nil {
		s.logger.Error("cart save failed", zap.String("key", s.key), zap.Error(err))
	}
}
