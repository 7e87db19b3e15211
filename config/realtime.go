package config

import (
	"fmt"
	"strings"
)

// RealtimeDriver selects the transport for realtime events.
type RealtimeDriver string

const (
	RealtimeDriverRedis RealtimeDriver = "redis"
	RealtimeDriverAMQP  RealtimeDriver = "amqp"
	RealtimeDriverNone  RealtimeDriver = "none"
)

// UnmarshalText implements encoding.TextUnmarshaler for RealtimeDriver.
func (d *RealtimeDriver) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "redis", "amqp", "none":
		*d = RealtimeDriver(v)
		return nil
	default:
		return fmt.Errorf("invalid RealtimeDriver: %q (valid options: redis, amqp, none)", v)
	}
}

// RealtimeConfig configures where job and user events are published.
type RealtimeConfig struct {
	Driver RealtimeDriver `env:"REALTIME_DRIVER" envDefault:"none"`

	// RedisPrefix namespaces Redis pub/sub channels.
	RedisPrefix string `env:"REALTIME_REDIS_PREFIX" envDefault:"hustle:rt:"`

	AMQPURL      string `env:"REALTIME_AMQP_URL"`
	AMQPExchange string `env:"REALTIME_AMQP_EXCHANGE" envDefault:"hustle.realtime"`
}

// Sanitize falls back to no transport when the AMQP driver has no URL.
func (c *RealtimeConfig) Sanitize() {
	if c.Driver == "" {
		c.Driver = RealtimeDriverNone
	}
	c.AMQPURL = strings.TrimSpace(c.AMQPURL)
	if c.Driver == RealtimeDriverAMQP && c.AMQPURL == "" {
		c.Driver = RealtimeDriverNone
	}
	if c.AMQPExchange == "" {
		c.AMQPExchange = "hustle.realtime"
	}
}
