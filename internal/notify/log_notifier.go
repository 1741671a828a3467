package notify

import (
	"context"

	"github.com/nikolayk812/petclub-shop/internal/domain"
	"github.com/nikolayk812/petclub-shop/internal/port"
	"go.uber.org/zap"
)

type logNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier only records placed orders in the log. Used when no broker is configured.
func NewLogNotifier(logger *zap.Logger) port.Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &logNotifier{logger: logger}
}

func (n *logNotifier) OrderPlaced(_ context.Context, order domain.Order) error {
	n.logger.Info("order placed notification",
		zap.String("order_id", order.ID.String()),
		zap.String("customer", order.Customer.Name),
		zap.String("total", order.Total.String()),
		zap.Int("items", len(order.Items)))
	return nil
}
