package sessiongate

import (
	"context"
	"time"

	internalevents "github.com/sessiongate/sessiongate/internal/events"
	"github.com/sessiongate/sessiongate/session"
)

// Engine orchestrates credential verification, token issuance, token
// resolution, and token revocation against the session cache and the user
// store.
//
// Engine instances are configured during initialization through
// [Builder.Build] and treated as immutable afterwards. All methods are safe
// for concurrent use; the cache is the only shared session state, so no
// application-level locking is involved.
type Engine struct {
	config       Config
	sessionStore *session.Store
	userStore    UserStore
	events       *internalevents.Dispatcher
	metrics      *Metrics
}

// Close stops the event dispatcher after draining buffered events. The
// Engine must not be used after Close.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.events != nil {
		e.events.Close()
	}
}

// EventsDropped reports how many events were discarded because the dispatch
// buffer was full.
func (e *Engine) EventsDropped() uint64 {
	if e == nil || e.events == nil {
		return 0
	}
	return e.events.Dropped()
}

// MetricsSnapshot returns a point-in-time copy of all counters.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters: map[MetricID]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

// Health probes the session cache connection and reports liveness and
// latency. Operational reporting only: request-path decisions never consult
// it, and a dead probe does not fail in-flight operations.
func (e *Engine) Health(ctx context.Context) Health {
	if e == nil || e.sessionStore == nil {
		return Health{}
	}

	latency, err := e.sessionStore.Ping(ctx)
	return Health{
		CacheAlive:   err == nil,
		CacheLatency: latency,
	}
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

// emitEvent forwards an event to the dispatcher. metadata is built lazily so
// disabled dispatch costs nothing on the request path.
func (e *Engine) emitEvent(ctx context.Context, eventType string, success bool, userID string, opErr error, metadata func() map[string]string) {
	if e == nil || e.events == nil {
		return
	}

	event := Event{
		Timestamp: time.Now(),
		EventType: eventType,
		UserID:    userID,
		IP:        clientIPFromContext(ctx),
		Success:   success,
	}
	if opErr != nil {
		event.Error = opErr.Error()
	}
	if metadata != nil {
		event.Metadata = metadata()
	}

	e.events.Emit(ctx, event)
}
