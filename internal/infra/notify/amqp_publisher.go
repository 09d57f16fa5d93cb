package notify

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker"
)

// Channel is the subset of *amqp.Channel the publisher relies on.
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type closer interface {
	Close() error
}

// AMQPPublisher sends reservation events to a durable queue on the default
// exchange. Calls go through a circuit breaker so a dead broker costs one
// fast failure per request instead of a full publish timeout.
type AMQPPublisher struct {
	mu      sync.Mutex // amqp channels are not safe for concurrent publishing
	conn    closer
	channel Channel
	queue   string
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

// Dial connects to the broker and declares the reservation queue.
func Dial(cfg config.NotifyConfig, logger *slog.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		return nil, infra.WrapErr(logger, infra.KindBrokerFailure, "failed to dial broker", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, infra.WrapErr(logger, infra.KindBrokerFailure, "failed to open channel", err)
	}

	p, err := NewAMQPPublisher(ch, cfg, logger)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func NewAMQPPublisher(ch Channel, cfg config.NotifyConfig, logger *slog.Logger) (*AMQPPublisher, error) {
	if _, err := ch.QueueDeclare(
		cfg.Queue, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	); err != nil {
		_ = ch.Close()
		return nil, infra.WrapErr(logger, infra.KindBrokerFailure, "failed to declare queue", err)
	}

	return &AMQPPublisher{
		channel: ch,
		queue:   cfg.Queue,
		timeout: cfg.PublishTimeout,
		breaker: newBreaker("notify."+cfg.Queue, cfg.BreakerMaxFailures, cfg.BreakerOpenTimeout, logger),
		logger:  logger,
	}, nil
}

func newBreaker(name string, maxFailures uint32, openTimeout time.Duration, logger *slog.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     openTimeout,
		Interval:    0,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})
}

func (p *AMQPPublisher) Publish(ctx context.Context, event commands.ReservationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return infra.WrapErr(p.logger, infra.KindEncodeFailure, "failed to encode reservation event", err)
	}

	_, err = p.breaker.Execute(func() (interface{}, error) {
		return nil, p.publish(ctx, event, body)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return infra.WrapErr(p.logger, infra.KindBreakerOpen, "publisher circuit is open", err)
		}
		return infra.WrapErr(p.logger, infra.KindBrokerFailure, "failed to publish reservation event", err)
	}

	p.logger.DebugContext(ctx, "reservation event published",
		slog.String("kind", string(event.Kind)),
		slog.String("reservation_id", event.ReservationID.String()))
	return nil
}

func (p *AMQPPublisher) publish(ctx context.Context, event commands.ReservationEvent, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.channel.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Type:         string(event.Kind),
			MessageId:    event.ReservationID.String(),
			Timestamp:    event.OccurredAt,
			Body:         body,
		})
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var closeErr error
	if err := p.channel.Close(); err != nil {
		closeErr = errs.Wrap(err, "failed to close channel")
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && closeErr == nil {
			closeErr = errs.Wrap(err, "failed to close connection")
		}
	}
	return closeErr
}
