//go:build unit

package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/usecase/commands"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error) {
	ret := m.Called(name, durable, autoDelete, exclusive, noWait, args)
	return ret.Get(0).(amqp.Queue), ret.Error(1)
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	ret := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return ret.Error(0)
}

func (m *MockChannel) Close() error {
	return m.Called().Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testNotifyConfig() config.NotifyConfig {
	cfg := config.NewTestConfig().Notify
	cfg.BreakerMaxFailures = 2
	cfg.BreakerOpenTimeout = time.Minute
	return cfg
}

func sampleEvent() commands.ReservationEvent {
	return commands.ReservationEvent{
		Kind:          commands.EventReservationConfirmed,
		ReservationID: uuid.New(),
		SessionID:     uuid.New(),
		RoomID:        "101",
		RoomType:      "Single",
		GuestName:     "Alice",
		Nights:        5,
		TotalCents:    52250,
		OccurredAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newPublisher(t *testing.T, ch *MockChannel) *AMQPPublisher {
	t.Helper()
	cfg := testNotifyConfig()
	ch.On("QueueDeclare", cfg.Queue, true, false, false, false, amqp.Table(nil)).
		Return(amqp.Queue{Name: cfg.Queue}, nil).Once()

	p, err := NewAMQPPublisher(ch, cfg, discardLogger())
	require.NoError(t, err)
	return p
}

func TestNewAMQPPublisher(t *testing.T) {
	t.Run("queue declare failure closes channel", func(t *testing.T) {
		cfg := testNotifyConfig()
		ch := new(MockChannel)
		ch.On("QueueDeclare", cfg.Queue, true, false, false, false, amqp.Table(nil)).
			Return(amqp.Queue{}, errors.New("access refused")).Once()
		ch.On("Close").Return(nil).Once()

		p, err := NewAMQPPublisher(ch, cfg, discardLogger())

		require.Error(t, err)
		assert.Nil(t, p)
		assert.True(t, infra.IsKind(err, infra.KindBrokerFailure))
		ch.AssertExpectations(t)
	})
}

func TestAMQPPublisher_Publish(t *testing.T) {
	t.Run("publishes json body to queue", func(t *testing.T) {
		ch := new(MockChannel)
		p := newPublisher(t, ch)
		event := sampleEvent()

		var sent amqp.Publishing
		ch.On("PublishWithContext", mock.Anything, "", "hotel.reservations", false, false, mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(5).(amqp.Publishing) }).
			Return(nil).Once()

		err := p.Publish(context.Background(), event)

		require.NoError(t, err)
		assert.Equal(t, "application/json", sent.ContentType)
		assert.Equal(t, amqp.Persistent, sent.DeliveryMode)
		assert.Equal(t, string(commands.EventReservationConfirmed), sent.Type)
		assert.Equal(t, event.ReservationID.String(), sent.MessageId)

		var decoded commands.ReservationEvent
		require.NoError(t, json.Unmarshal(sent.Body, &decoded))
		assert.Equal(t, event.RoomID, decoded.RoomID)
		assert.Equal(t, event.TotalCents, decoded.TotalCents)
		ch.AssertExpectations(t)
	})

	t.Run("broker failure is reported", func(t *testing.T) {
		ch := new(MockChannel)
		p := newPublisher(t, ch)
		ch.On("PublishWithContext", mock.Anything, "", "hotel.reservations", false, false, mock.Anything).
			Return(amqp.ErrClosed).Once()

		err := p.Publish(context.Background(), sampleEvent())

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindBrokerFailure))
		assert.ErrorIs(t, err, amqp.ErrClosed)
	})

	t.Run("breaker opens after consecutive failures", func(t *testing.T) {
		ch := new(MockChannel)
		p := newPublisher(t, ch)
		ch.On("PublishWithContext", mock.Anything, "", "hotel.reservations", false, false, mock.Anything).
			Return(amqp.ErrClosed).Twice()

		for i := 0; i < 2; i++ {
			err := p.Publish(context.Background(), sampleEvent())
			require.True(t, infra.IsKind(err, infra.KindBrokerFailure))
		}

		err := p.Publish(context.Background(), sampleEvent())

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindBreakerOpen))
		ch.AssertNumberOfCalls(t, "PublishWithContext", 2)
	})
}

func TestAMQPPublisher_Close(t *testing.T) {
	ch := new(MockChannel)
	p := newPublisher(t, ch)
	ch.On("Close").Return(nil).Once()

	require.NoError(t, p.Close())
	ch.AssertExpectations(t)
}

func TestNoopPublisher(t *testing.T) {
	p := NewNoopPublisher(discardLogger())

	assert.NoError(t, p.Publish(context.Background(), sampleEvent()))
	assert.NoError(t, p.Close())
}
