package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nikolayk812/petclub-shop/internal/domain"
	"github.com/nikolayk812/petclub-shop/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

var DefaultDeliveryFee = decimal.RequireFromString("15.00")

var (
	ErrCannotAdvance  = errors.New("cannot advance: current step is incomplete")
	ErrCannotGoBack   = errors.New("cannot go back from current step")
	ErrFlowCompleted  = errors.New("checkout is already confirmed")
	ErrDeliveryLocked = errors.New("delivery details are locked, go back to change them")
	ErrInvalidMethod  = errors.New("invalid method")
)

// Cart is the part of the cart store the flow reads and, on placement, clears.
type Cart interface {
	Snapshot() domain.Cart
	TotalPrice() domain.Money
	ClearCart(ctx context.Context)
}

// Flow walks one purchase through cart, delivery, payment and confirmation.
// A confirmed flow is terminal; start a new Flow for the next purchase.
type Flow struct {
	cart     Cart
	placer   port.OrderPlacer
	notifier port.Notifier
	validate *validator.Validate
	logger   *zap.Logger
	nowFunc  func() time.Time

	deliveryFee decimal.Decimal

	// orderID is fixed per flow so a retried placement repeats the same order
	orderID uuid.UUID

	step     domain.Step
	customer domain.CustomerInfo
	delivery domain.DeliveryMethod
	payment  domain.PaymentMethod
	order    *domain.Order
}

type Option func(*Flow)

func WithNotifier(n port.Notifier) Option {
	return func(f *Flow) {
		f.notifier = n
	}
}

func WithDeliveryFee(fee decimal.Decimal) Option {
	return func(f *Flow) {
		f.deliveryFee = fee
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(f *Flow) {
		f.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(f *Flow) {
		f.nowFunc = now
	}
}

func NewFlow(cart Cart, placer port.OrderPlacer, opts ...Option) (*Flow, error) {
	if cart == nil {
		return nil, errors.New("cart is nil")
	}
	if placer == nil {
		return nil, errors.New("placer is nil")
	}

	f := &Flow{
		cart:        cart,
		placer:      placer,
		validate:    newValidator(),
		logger:      zap.NewNop(),
		nowFunc:     time.Now,
		deliveryFee: DefaultDeliveryFee,
		orderID:     uuid.New(),
		step:        domain.StepCart,
		delivery:    domain.DeliveryShip,
		payment:     domain.PaymentCard,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.deliveryFee.IsNegative() {
		return nil, fmt.Errorf("delivery fee[%s] is negative", f.deliveryFee)
	}

	return f, nil
}

func (f *Flow) Step() domain.Step {
	return f.step
}

func (f *Flow) Customer() domain.CustomerInfo {
	return f.customer
}

func (f *Flow) DeliveryMethod() domain.DeliveryMethod {
	return f.delivery
}

func (f *Flow) PaymentMethod() domain.PaymentMethod {
	return f.payment
}

// SetCustomer and SetDeliveryMethod are accepted in the cart and delivery steps only.
func (f *Flow) SetCustomer(info domain.CustomerInfo) error {
	if err := f.deliveryEditable(); err != nil {
		return err
	}
	f.customer = info
	return nil
}

func (f *Flow) SetDeliveryMethod(m domain.DeliveryMethod) error {
	if err := f.deliveryEditable(); err != nil {
		return err
	}
	if !m.Valid() {
		return fmt.Errorf("delivery method[%s]: %w", m, ErrInvalidMethod)
	}
	f.delivery = m
	return nil
}

func (f *Flow) SetPaymentMethod(m domain.PaymentMethod) error {
	if f.step == domain.StepConfirmation {
		return ErrFlowCompleted
	}
	if !m.Valid() {
		return fmt.Errorf("payment method[%s]: %w", m, ErrInvalidMethod)
	}
	f.payment = m
	return nil
}

func (f *Flow) deliveryEditable() error {
	switch f.step {
	case domain.StepConfirmation:
		return ErrFlowCompleted
	case domain.StepPayment:
		return ErrDeliveryLocked
	}
	return nil
}

// CanAdvance reports whether the guard of the current step passes.
func (f *Flow) CanAdvance() bool {
	switch f.step {
	case domain.StepCart:
		return !f.cart.Snapshot().IsEmpty()
	case domain.StepDelivery:
		return f.deliveryComplete()
	case domain.StepPayment:
		// the cart is live and may have been emptied since the delivery step
		return !f.cart.Snapshot().IsEmpty() && f.deliveryComplete()
	default:
		return false
	}
}

// Advance moves one step forward. Leaving payment places the order; the cart is cleared
// only after the placer accepted it, and a failed placement leaves cart and flow untouched.
func (f *Flow) Advance(ctx context.Context) error {
	if !f.CanAdvance() {
		return ErrCannotAdvance
	}

	switch f.step {
	case domain.StepCart:
		f.step = domain.StepDelivery
	case domain.StepDelivery:
		f.step = domain.StepPayment
	case domain.StepPayment:
		return f.placeOrder(ctx)
	}

	return nil
}

func (f *Flow) Back() error {
	switch f.step {
	case domain.StepDelivery:
		f.step = domain.StepCart
	case domain.StepPayment:
		f.step = domain.StepDelivery
	default:
		return ErrCannotGoBack
	}
	return nil
}

// Subtotal is recomputed from the live cart on every call.
func (f *Flow) Subtotal() domain.Money {
	return f.cart.TotalPrice()
}

func (f *Flow) DeliveryFee() domain.Money {
	fee := decimal.Zero
	if f.delivery == domain.DeliveryShip {
		fee = f.deliveryFee
	}
	return domain.NewMoney(fee, f.currency())
}

func (f *Flow) Total() domain.Money {
	return f.Subtotal().Add(f.DeliveryFee())
}

// Order returns the placed order once the flow is confirmed.
func (f *Flow) Order() (domain.Order, bool) {
	if f.order == nil {
		return domain.Order{}, false
	}
	return *f.order, true
}

func (f *Flow) currency() currency.Unit {
	return f.cart.TotalPrice().Currency
}

func (f *Flow) placeOrder(ctx context.Context) error {
	order := f.buildOrder()

	err := f.placer.PlaceOrder(ctx, order)
	switch {
	case errors.Is(err, domain.ErrOrderExists):
		// an earlier attempt of this flow landed but its acknowledgement was lost
		f.logger.Info("order was already placed", zap.String("order_id", order.ID.String()))
	case err != nil:
		f.logger.Error("order placement failed",
			zap.String("order_id", order.ID.String()),
			zap.Error(err))
		return fmt.Errorf("placer.PlaceOrder: %w", err)
	}

	f.cart.ClearCart(ctx)
	f.order = &order
	f.step = domain.StepConfirmation

	f.logger.Info("order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("total", order.Total.String()),
		zap.String("delivery", string(order.Delivery)),
		zap.String("payment", string(order.Payment)))

	if f.notifier != nil {
		if err := f.notifier.OrderPlaced(ctx, order); err != nil {
			f.logger.Warn("order notification failed",
				zap.String("order_id", order.ID.String()),
				zap.Error(err))
		}
	}

	return nil
}

func (f *Flow) buildOrder() domain.Order {
	snapshot := f.cart.Snapshot()

	items := make([]domain.OrderItem, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		items = append(items, domain.OrderItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			UnitPrice: item.Product.EffectivePrice(),
			Quantity:  item.Quantity,
		})
	}

	customer := f.customer
	if f.delivery == domain.DeliveryPickup {
		customer.Address = domain.Address{}
	}

	subtotal := domain.NewMoney(snapshot.TotalPrice(), f.currency())
	fee := f.DeliveryFee()

	return domain.Order{
		ID:          f.orderID,
		Items:       items,
		Customer:    customer,
		Delivery:    f.delivery,
		Payment:     f.payment,
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal.Add(fee),
		CreatedAt:   f.nowFunc().UTC(),
	}
}
