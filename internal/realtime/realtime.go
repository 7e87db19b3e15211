// Package realtime holds transport-neutral helpers for the advisory event
// channel. Delivery is best effort: persisted state stays authoritative.
package realtime

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/domain/model"
)

// Nop discards every event. It is used when no realtime transport is configured.
type Nop struct{}

var _ core.Channel = Nop{}

// Publish implements core.Channel.
func (Nop) Publish(context.Context, string, model.RealtimeEvent) error { return nil }

// Message pairs a topic with the event to publish on it.
type Message struct {
	Topic string
	Event model.RealtimeEvent
}

// Broadcast publishes msgs concurrently and logs failures. It never returns an
// error; callers have already committed the state the events describe.
func Broadcast(ctx context.Context, ch core.Channel, logger *slog.Logger, msgs ...Message) {
	if ch == nil || len(msgs) == 0 {
		return
	}
	if logger == nil {
		logger = slog.Default()
	}

	var g errgroup.Group
	for _, m := range msgs {
		g.Go(func() error {
			if err := ch.Publish(ctx, m.Topic, m.Event); err != nil {
				logger.WarnContext(ctx, "realtime publish failed",
					"topic", m.Topic,
					"event", m.Event.Type,
					"error", err,
				)
			}
			return nil
		})
	}
	_ = g.Wait()
}
