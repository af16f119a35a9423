package redis

import "context"

// EmailMessage is a unit of work for the email worker.
type EmailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// EmailQueue is the producer side of the email task queue.
type EmailQueue interface {
	// Enqueue places a message on the queue.
	Enqueue(ctx context.Context, msg EmailMessage) error
}

// EmailDequeuer is the consumer side of the email task queue.
type EmailDequeuer interface {
	// Dequeue blocks until a message is available or the wait times out.
	// A nil message with a nil error means the wait timed out.
	Dequeue(ctx context.Context) (*EmailMessage, error)
}
