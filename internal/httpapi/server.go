package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/petclub-shop/internal/cart"
	"github.com/nikolayk812/petclub-shop/internal/catalog"
	"github.com/nikolayk812/petclub-shop/internal/checkout"
	"github.com/nikolayk812/petclub-shop/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

const (
	ownerHeader = "X-Cart-Owner"

	defaultSessionIdleTimeout = 30 * time.Minute
)

type Dependencies struct {
	Catalog  *catalog.Service
	Storage  port.CartStorage
	Orders   port.OrderPlacer
	Notifier port.Notifier
	Logger   *zap.Logger

	CartKey  string
	Currency currency.Unit
	Now      func() time.Time

	// nil keeps the checkout default fee
	DeliveryFee *decimal.Decimal

	// sessions unused for longer are dropped; the persisted cart survives, the checkout flow does not
	SessionIdleTimeout time.Duration
}

// session is one owner's cart and the checkout flow started on it.
// Requests for the same owner are serialized by mu.
type session struct {
	mu   sync.Mutex
	cart *cart.Store
	flow *checkout.Flow

	// guarded by Server.mu
	lastSeen time.Time
}

type Server struct {
	deps   Dependencies
	logger *zap.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

func NewServer(deps Dependencies) (*Server, error) {
	if deps.Catalog == nil {
		return nil, fmt.Errorf("catalog is nil")
	}
	if deps.Storage == nil {
		return nil, fmt.Errorf("storage is nil")
	}
	if deps.Orders == nil {
		return nil, fmt.Errorf("orders is nil")
	}
	if deps.CartKey == "" {
		deps.CartKey = cart.DefaultKey
	}
	if deps.Currency == (currency.Unit{}) {
		deps.Currency = currency.BRL
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.SessionIdleTimeout <= 0 {
		deps.SessionIdleTimeout = defaultSessionIdleTimeout
	}

	return &Server{
		deps:     deps,
		logger:   deps.Logger,
		sessions: make(map[string]*session),
	}, nil
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	products := r.Group("/products")
	products.GET("", s.listProducts)
	products.GET("/facets", s.productFacets)
	products.GET("/categories", s.categories)
	products.GET("/:id", s.getProduct)

	carts := r.Group("/cart", requireOwner())
	carts.GET("", s.withSession(s.getCart))
	carts.POST("/items", s.withSession(s.addItem))
	carts.PUT("/items/:productId", s.withSession(s.updateItem))
	carts.DELETE("/items/:productId", s.withSession(s.removeItem))
	carts.DELETE("", s.withSession(s.clearCart))

	co := r.Group("/checkout", requireOwner())
	co.POST("", s.withSession(s.startCheckout))
	co.GET("", s.withSession(s.getCheckout))
	co.PUT("/customer", s.withSession(s.setCustomer))
	co.PUT("/delivery", s.withSession(s.setDelivery))
	co.PUT("/payment", s.withSession(s.setPayment))
	co.POST("/advance", s.withSession(s.advance))
	co.POST("/back", s.withSession(s.back))

	return r
}

// session returns the owner's session, loading the persisted cart on first use.
// Creating a session also drops the ones idle past the timeout.
func (s *Server) session(ctx context.Context, owner string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.deps.Now()

	if sess, ok := s.sessions[owner]; ok {
		sess.lastSeen = now
		return sess, nil
	}

	s.evictIdle(now)

	store, err := cart.NewStore(s.deps.Storage,
		cart.WithKey(s.deps.CartKey+":"+owner),
		cart.WithCurrency(s.deps.Currency),
		cart.WithLogger(s.logger.With(zap.String("owner", owner))))
	if err != nil {
		return nil, fmt.Errorf("cart.NewStore: %w", err)
	}
	store.Load(ctx)

	sess := &session{cart: store, lastSeen: now}
	s.sessions[owner] = sess
	return sess, nil
}

func (s *Server) evictIdle(now time.Time) {
	for owner, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.deps.SessionIdleTimeout {
			delete(s.sessions, owner)
			s.logger.Debug("idle session dropped", zap.String("owner", owner))
		}
	}
}

// Sessions reports how many owners currently hold a session.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

func (s *Server) newFlow(sess *session, owner string) (*checkout.Flow, error) {
	opts := []checkout.Option{
		checkout.WithLogger(s.logger.With(zap.String("owner", owner))),
		checkout.WithClock(s.deps.Now),
	}
	if s.deps.DeliveryFee != nil {
		opts = append(opts, checkout.WithDeliveryFee(*s.deps.DeliveryFee))
	}
	if s.deps.Notifier != nil {
		opts = append(opts, checkout.WithNotifier(s.deps.Notifier))
	}

	flow, err := checkout.NewFlow(sess.cart, s.deps.Orders, opts...)
	if err != nil {
		return nil, fmt.Errorf("checkout.NewFlow: %w", err)
	}
	return flow, nil
}

type sessionHandler func(c *gin.Context, sess *session)

func (s *Server) withSession(h sessionHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := c.GetString(ownerKey)

		sess, err := s.session(c.Request.Context(), owner)
		if err != nil {
			s.logger.Error("session setup failed", zap.String("owner", owner), zap.Error(err))
			writeError(c, http.StatusInternalServerError, codeInternal, "could not open cart", err.Error())
			return
		}

		sess.mu.Lock()
		defer sess.mu.Unlock()

		h(c, sess)
	}
}
