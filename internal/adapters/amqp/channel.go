// Package amqp publishes realtime events to a RabbitMQ topic exchange.
package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/domain/model"
)

// DefaultExchange is the topic exchange realtime events are published to.
const DefaultExchange = "hustle.realtime"

const publishTimeout = 5 * time.Second

// Config configures the AMQP realtime channel.
type Config struct {
	URL      string
	Exchange string
	Logger   *slog.Logger
}

// Channel publishes events with routing keys derived from topics: "job:<id>"
// is routed as "job.<id>", so consumers can bind "job.*" or "user.<id>".
type Channel struct {
	conn     *amqp.Connection
	exchange string
	logger   *slog.Logger

	mu sync.Mutex
	ch *amqp.Channel
}

var _ core.Channel = (*Channel)(nil)

// Dial connects to the broker and declares the durable topic exchange.
func Dial(cfg Config) (*Channel, error) {
	if cfg.URL == "" {
		return nil, errors.New("amqp: url is required")
	}
	exchange := cfg.Exchange
	if exchange == "" {
		exchange = DefaultExchange
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp declare exchange %s: %w", exchange, err)
	}

	logger.Info("connected to amqp realtime exchange", "exchange", exchange)
	return &Channel{conn: conn, ch: ch, exchange: exchange, logger: logger.With("component", "amqp_channel")}, nil
}

// Publish implements core.Channel. Messages are transient; realtime events
// are advisory and clients re-fetch state on receipt.
func (c *Channel) Publish(ctx context.Context, topic string, event model.RealtimeEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal realtime event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ch == nil {
		return errors.New("amqp: channel is closed")
	}
	err = c.ch.PublishWithContext(ctx,
		c.exchange,
		RoutingKey(topic),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Type:        event.Type,
			Timestamp:   event.Timestamp,
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("amqp publish %s: %w", topic, err)
	}
	return nil
}

// Close shuts the channel and connection down.
func (c *Channel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var errs []error
	if c.ch != nil {
		errs = append(errs, c.ch.Close())
		c.ch = nil
	}
	if c.conn != nil {
		errs = append(errs, c.conn.Close())
		c.conn = nil
	}
	return errors.Join(errs...)
}

// RoutingKey converts a realtime topic into an AMQP topic routing key.
func RoutingKey(topic string) string {
	return strings.ReplaceAll(topic, ":", ".")
}
