package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// emailQueueKey is the Redis list holding pending email tasks.
	emailQueueKey = "queue:emails"

	// dequeueTimeout bounds each blocking pop so the worker can observe
	// context cancellation between waits.
	dequeueTimeout = 5 * time.Second
)

// TaskQueue is a Redis-list backed queue for email tasks. Producers push
// with LPUSH; the worker pops with BRPOP, so tasks are delivered in FIFO
// order, at most once.
type TaskQueue struct {
	client *redis.Client
}

// Ensure interfaces are satisfied.
var (
	_ EmailQueue    = (*TaskQueue)(nil)
	_ EmailDequeuer = (*TaskQueue)(nil)
)

// NewTaskQueue creates a new TaskQueue.
func NewTaskQueue(client *redis.Client) *TaskQueue {
	return &TaskQueue{client: client}
}

// Enqueue places a message on the queue.
func (q *TaskQueue) Enqueue(ctx context.Context, msg EmailMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return q.client.LPush(ctx, emailQueueKey, data).Err()
}

// Dequeue blocks until a message is available or the wait times out.
func (q *TaskQueue) Dequeue(ctx context.Context) (*EmailMessage, error) {
	values, err := q.client.BRPop(ctx, dequeueTimeout, emailQueueKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	// BRPOP returns [key, value].
	var msg EmailMessage
	if err := json.Unmarshal([]byte(values[1]), &msg); err != nil {
		return nil, err
	}

	return &msg, nil
}

// Len reports the number of pending tasks.
func (q *TaskQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, emailQueueKey).Result()
}
