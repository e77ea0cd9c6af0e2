package sessiongate

import (
	"errors"

	"github.com/redis/go-redis/v9"

	internalevents "github.com/sessiongate/sessiongate/internal/events"
	internalmetrics "github.com/sessiongate/sessiongate/internal/metrics"
	"github.com/sessiongate/sessiongate/session"
)

// Builder assembles an [Engine]. Construction is allocation-only: no I/O is
// performed until the first Engine method call.
type Builder struct {
	config Config

	redis     redis.UniversalClient
	userStore UserStore
	eventSink EventSink

	built bool
}

// New returns a [Builder] seeded with the default configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the builder's configuration wholesale.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithRedis sets the Redis client backing the session cache. Required.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithUserStore sets the persistent user store adapter. Required.
func (b *Builder) WithUserStore(store UserStore) *Builder {
	b.userStore = store
	return b
}

// WithEventSink sets the sink receiving engine events. Optional; without a
// sink, enabled event dispatch discards into a [NoOpSink].
func (b *Builder) WithEventSink(sink EventSink) *Builder {
	b.eventSink = sink
	return b
}

// WithMetricsEnabled toggles the in-process counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration and dependencies and returns a ready
// [Engine]. A Builder can build at most once.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}
	if b.redis == nil {
		return nil, errors.New("redis client is required")
	}
	if b.userStore == nil {
		return nil, errors.New("user store is required")
	}
	if err := validateConfig(b.config); err != nil {
		return nil, err
	}

	e := &Engine{
		config:       b.config,
		sessionStore: session.NewStore(b.redis, b.config.Session.RedisPrefix),
		userStore:    b.userStore,
		events: internalevents.NewDispatcher(internalevents.Config{
			Enabled:    b.config.Events.Enabled,
			BufferSize: b.config.Events.BufferSize,
			DropIfFull: b.config.Events.DropIfFull,
		}, b.eventSink),
		metrics: internalmetrics.New(internalmetrics.Config{
			Enabled: b.config.Metrics.Enabled,
		}),
	}

	b.built = true
	return e, nil
}
