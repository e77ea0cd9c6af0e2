package sessiongate

import (
	"errors"
	"strings"
	"time"
)

// SessionTTL is the fixed lifetime of a session token, armed once at
// creation. Tokens are never renewed; resolving a token does not extend it.
const SessionTTL = 24 * time.Hour

// Config defines engine behavior. Instances are configured during
// initialization and treated as immutable after [Builder.Build].
type Config struct {
	Session SessionConfig
	Events  EventConfig
	Metrics MetricsConfig
}

// SessionConfig controls the session cache key layout.
type SessionConfig struct {
	// RedisPrefix is prepended to the raw token to form the cache key,
	// separating session entries from unrelated usage of the same Redis
	// database. Defaults to "auth_".
	RedisPrefix string
}

// EventConfig controls the asynchronous event dispatcher.
type EventConfig struct {
	Enabled    bool
	BufferSize int
	// DropIfFull makes Emit non-blocking: events beyond the buffer are
	// counted as dropped instead of stalling the caller.
	DropIfFull bool
}

// MetricsConfig controls the in-process atomic counters.
type MetricsConfig struct {
	Enabled bool
}

func defaultConfig() Config {
	return Config{
		Session: SessionConfig{
			RedisPrefix: "auth_",
		},
		Events: EventConfig{
			Enabled:    true,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

func validateConfig(cfg Config) error {
	if cfg.Session.RedisPrefix == "" {
		return errors.New("session redis prefix must not be empty")
	}
	if strings.ContainsAny(cfg.Session.RedisPrefix, " \t\n") {
		return errors.New("session redis prefix must not contain whitespace")
	}
	if cfg.Events.Enabled && cfg.Events.BufferSize < 0 {
		return errors.New("event buffer size must not be negative")
	}
	return nil
}
