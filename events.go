package sessiongate

import (
	"io"

	"github.com/redis/go-redis/v9"

	internalevents "github.com/sessiongate/sessiongate/internal/events"
)

// Event is a structured record emitted by the engine on authentication,
// revocation, and registration outcomes. Delivery is asynchronous and
// best-effort: event emission never delays or fails an operation.
type Event = internalevents.Event

// EventSink receives [Event] values from the engine's event dispatcher.
type EventSink = internalevents.Sink

// NoOpSink is an [EventSink] that silently discards all events.
type NoOpSink = internalevents.NoOpSink

// ChannelSink is a buffered channel-based [EventSink].
type ChannelSink = internalevents.ChannelSink

// JSONWriterSink is an [EventSink] that writes JSON-encoded events to an
// [io.Writer], one object per line.
type JSONWriterSink = internalevents.JSONWriterSink

// RedisQueueSink is an [EventSink] that pushes post-registration jobs onto
// an external Redis-list work queue.
type RedisQueueSink = internalevents.RedisQueueSink

// Event types stamped on [Event.EventType].
const (
	EventAuthSuccess     = internalevents.TypeAuthSuccess
	EventAuthFailure     = internalevents.TypeAuthFailure
	EventTokenRevoked    = internalevents.TypeTokenRevoked
	EventUserCreated     = internalevents.TypeUserCreated
	EventRegisterFailure = internalevents.TypeRegisterFailure
)

// DefaultQueueName is the Redis list [RedisQueueSink] pushes onto unless a
// name is given.
const DefaultQueueName = internalevents.DefaultQueueName

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalevents.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalevents.NewJSONWriterSink(w)
}

// NewRedisQueueSink creates a [RedisQueueSink] pushing onto the named Redis
// list. An empty queue name selects [DefaultQueueName]. The payload is a
// JSON object carrying the new user's id, matching the queue worker
// contract.
func NewRedisQueueSink(client redis.UniversalClient, queue string) *RedisQueueSink {
	return internalevents.NewRedisQueueSink(client, queue)
}
