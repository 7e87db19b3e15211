package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/domain/model"
)

// DefaultChannelPrefix namespaces realtime pub/sub channels.
const DefaultChannelPrefix = "hustle:rt:"

// Channel publishes realtime events as JSON over Redis pub/sub. Subscribers
// listen on prefix+topic, e.g. "hustle:rt:job:<id>".
type Channel struct {
	client redis.UniversalClient
	prefix string
}

var _ core.Channel = (*Channel)(nil)

// NewChannel creates a Redis realtime channel. An empty prefix selects DefaultChannelPrefix.
func NewChannel(client redis.UniversalClient, prefix string) *Channel {
	if prefix == "" {
		prefix = DefaultChannelPrefix
	}
	return &Channel{client: client, prefix: prefix}
}

// Publish implements core.Channel.
func (c *Channel) Publish(ctx context.Context, topic string, event model.RealtimeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal realtime event: %w", err)
	}
	if err := c.client.Publish(ctx, c.prefix+topic, payload).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// ChannelName returns the pub/sub channel that carries topic.
func (c *Channel) ChannelName(topic string) string { return c.prefix + topic }
