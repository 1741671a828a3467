package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/petclub-shop/internal/domain"
	"github.com/nikolayk812/petclub-shop/internal/port"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const publishTimeout = 5 * time.Second

type orderPlacedMessage struct {
	OrderID     uuid.UUID          `json:"orderId"`
	Customer    customerMessage    `json:"customer"`
	Delivery    string             `json:"delivery"`
	Payment     string             `json:"payment"`
	Items       []orderItemMessage `json:"items"`
	Subtotal    decimal.Decimal    `json:"subtotal"`
	DeliveryFee decimal.Decimal    `json:"deliveryFee"`
	Total       decimal.Decimal    `json:"total"`
	Currency    string             `json:"currency"`
	Address     *domain.Address    `json:"address,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
}

type customerMessage struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type orderItemMessage struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}

type Publisher struct {
	pool      *ChannelPool
	queueName string
	logger    *zap.Logger
}

// NewPublisher sends one persistent JSON message per placed order to queueName.
func NewPublisher(pool *ChannelPool, queueName string, logger *zap.Logger) (port.Notifier, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}
	if queueName == "" {
		return nil, fmt.Errorf("queueName is empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Publisher{
		pool:      pool,
		queueName: queueName,
		logger:    logger,
	}, nil
}

func (p *Publisher) OrderPlaced(ctx context.Context, order domain.Order) error {
	body, err := json.Marshal(newOrderPlacedMessage(order))
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	ch, err := p.pool.Get()
	if err != nil {
		return fmt.Errorf("pool.Get: %w", err)
	}
	defer p.pool.Put(ch)

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = ch.PublishWithContext(ctx, "", p.queueName, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    order.ID.String(),
		Timestamp:    order.CreatedAt,
		Type:         "order.placed",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("ch.PublishWithContext: %w", err)
	}

	p.logger.Info("order published",
		zap.String("order_id", order.ID.String()),
		zap.String("queue", p.queueName))
	return nil
}

func newOrderPlacedMessage(order domain.Order) orderPlacedMessage {
	items := make([]orderItemMessage, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemMessage{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	msg := orderPlacedMessage{
		OrderID: order.ID,
		Customer: customerMessage{
			Name:  order.Customer.Name,
			Email: order.Customer.Email,
			Phone: order.Customer.Phone,
		},
		Delivery:    string(order.Delivery),
		Payment:     string(order.Payment),
		Items:       items,
		Subtotal:    order.Subtotal.Amount,
		DeliveryFee: order.DeliveryFee.Amount,
		Total:       order.Total.Amount,
		Currency:    order.Total.Currency.String(),
		CreatedAt:   order.CreatedAt,
	}

	if order.Delivery == domain.DeliveryShip {
		address := order.Customer.Address
		msg.Address = &address
	}

	return msg
}
