package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var ErrNoChannel = errors.New("no channels available in pool")

// Channel is the part of *amqp.Channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	IsClosed() bool
	Close() error
}

// ChannelPool hands out channels that have the order queue declared.
type ChannelPool struct {
	open      func() (Channel, error)
	closeConn func() error
	channels  chan Channel
	queueName string
	logger    *zap.Logger

	mu     sync.Mutex
	closed bool
}

// Dial connects to RabbitMQ and pre-creates size channels.
func Dial(url, queueName string, size int, logger *zap.Logger) (*ChannelPool, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp.Dial: %w", err)
	}

	open := func() (Channel, error) {
		return conn.Channel()
	}

	pool, err := NewChannelPool(open, queueName, size, logger)
	if err != nil {
		return nil, errors.Join(err, conn.Close())
	}
	pool.closeConn = conn.Close

	return pool, nil
}

func NewChannelPool(open func() (Channel, error), queueName string, size int, logger *zap.Logger) (*ChannelPool, error) {
	if open == nil {
		return nil, fmt.Errorf("open is nil")
	}
	if queueName == "" {
		return nil, fmt.Errorf("queueName is empty")
	}
	if size < 1 {
		return nil, fmt.Errorf("size[%d] is below 1", size)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	pool := &ChannelPool{
		open:      open,
		channels:  make(chan Channel, size),
		queueName: queueName,
		logger:    logger,
	}

	for i := 0; i < size; i++ {
		ch, err := pool.createChannel()
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("createChannel[%d]: %w", i, err)
		}
		pool.channels <- ch
	}

	logger.Info("rabbitmq channel pool created", zap.Int("size", size), zap.String("queue", queueName))
	return pool, nil
}

func (p *ChannelPool) createChannel() (Channel, error) {
	ch, err := p.open()
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	_, err = ch.QueueDeclare(p.queueName, true, false, false, false, nil)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("ch.QueueDeclare: %w", err), ch.Close())
	}

	return ch, nil
}

// Get never blocks; a closed channel taken from the pool is replaced by a fresh one.
func (p *ChannelPool) Get() (Channel, error) {
	select {
	case ch, ok := <-p.channels:
		if !ok {
			return nil, ErrNoChannel
		}
		if ch.IsClosed() {
			p.logger.Warn("replacing closed rabbitmq channel")
			return p.createChannel()
		}
		return ch, nil
	default:
		return nil, ErrNoChannel
	}
}

func (p *ChannelPool) Put(ch Channel) {
	if ch == nil || ch.IsClosed() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		_ = ch.Close()
		return
	}

	select {
	case p.channels <- ch:
	default:
		_ = ch.Close()
	}
}

func (p *ChannelPool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	close(p.channels)

	var errs []error
	for ch := range p.channels {
		if err := ch.Close(); err != nil {
			errs = append(errs, fmt.Errorf("ch.Close: %w", err))
		}
	}
	if p.closeConn != nil {
		if err := p.closeConn(); err != nil {
			errs = append(errs, fmt.Errorf("conn.Close: %w", err))
		}
	}

	return errors.Join(errs...)
}
