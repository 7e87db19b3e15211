package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/hustlehub/hustle-api/config"
	amqpadapter "github.com/hustlehub/hustle-api/internal/adapters/amqp"
	redisadapter "github.com/hustlehub/hustle-api/internal/adapters/redis"
	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/realtime"
)

// RealtimeDeps contains dependencies for the realtime channel.
type RealtimeDeps struct {
	Config      config.RealtimeConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildRealtime selects the realtime transport. The returned close function
// is never nil.
//
//nolint:ireturn // callers only need the Channel port.
func BuildRealtime(deps RealtimeDeps) (core.Channel, func() error, error) {
	noop := func() error { return nil }

	switch deps.Config.Driver {
	case config.RealtimeDriverRedis:
		if deps.RedisClient == nil {
			return nil, noop, fmt.Errorf("realtime driver %q requires redis", deps.Config.Driver)
		}
		return redisadapter.NewChannel(deps.RedisClient, deps.Config.RedisPrefix), noop, nil

	case config.RealtimeDriverAMQP:
		ch, err := amqpadapter.Dial(amqpadapter.Config{
			URL:      deps.Config.AMQPURL,
			Exchange: deps.Config.AMQPExchange,
			Logger:   deps.Logger,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("connect realtime broker: %w", err)
		}
		return ch, ch.Close, nil

	default:
		return realtime.Nop{}, noop, nil
	}
}
