package events

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

// DefaultQueueName is the Redis list post-registration jobs are pushed onto.
// The name is an external contract with the worker that consumes the queue.
const DefaultQueueName = "userQueue"

// queueJob is the wire payload a queue worker receives. Field names are part
// of the worker contract.
type queueJob struct {
	UserID string `json:"userId"`
}

// RedisQueueSink forwards [TypeUserCreated] events to an external work queue
// backed by a Redis list. All other event types are ignored, and enqueue
// failures are swallowed after a log line: registration must never fail or
// stall because the queue is down.
type RedisQueueSink struct {
	client redis.UniversalClient
	queue  string
}

func NewRedisQueueSink(client redis.UniversalClient, queue string) *RedisQueueSink {
	if queue == "" {
		queue = DefaultQueueName
	}
	return &RedisQueueSink{
		client: client,
		queue:  queue,
	}
}

func (s *RedisQueueSink) Emit(ctx context.Context, event Event) {
	if s == nil || s.client == nil {
		return
	}
	if event.EventType != TypeUserCreated || event.UserID == "" {
		return
	}

	payload, err := json.Marshal(queueJob{UserID: event.UserID})
	if err != nil {
		return
	}

	if err := s.client.LPush(ctx, s.queue, payload).Err(); err != nil {
		log.Print("sessiongate: user queue enqueue failed")
	}
}

// Queue returns the Redis list name this sink pushes onto.
func (s *RedisQueueSink) Queue() string {
	return s.queue
}
