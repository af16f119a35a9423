package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	internalRedis "travel/internal/redis"
)

// stubDequeuer hands out a fixed set of messages, then reports empty waits.
type stubDequeuer struct {
	mu       sync.Mutex
	messages []internalRedis.EmailMessage
}

func (s *stubDequeuer) Dequeue(ctx context.Context) (*internalRedis.EmailMessage, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) == 0 {
		// Simulate the blocking wait of the real queue.
		time.Sleep(5 * time.Millisecond)
		return nil, nil
	}
	msg := s.messages[0]
	s.messages = s.messages[1:]
	return &msg, nil
}

// recordingMailer records sent messages and can fail on demand.
type recordingMailer struct {
	mu      sync.Mutex
	sent    []internalRedis.EmailMessage
	failFor string
}

func (m *recordingMailer) Send(ctx context.Context, msg internalRedis.EmailMessage) error {
	if msg.To == m.failFor {
		return errors.New("smtp refused")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func TestEmailWorker_DeliversQueuedMessages(t *testing.T) {
	t.Parallel()

	queue := &stubDequeuer{messages: []internalRedis.EmailMessage{
		{To: "a@example.com", Subject: "Booking Confirmation #1"},
		{To: "b@example.com", Subject: "Booking Confirmation #2"},
	}}
	mailer := &recordingMailer{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		NewEmailWorker(queue, mailer).Run(ctx)
	}()

	deadline := time.After(2 * time.Second)
	for mailer.count() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected 2 deliveries, got %d", mailer.count())
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after cancellation")
	}
}

func TestEmailWorker_SendFailureIsDroppedNotRetried(t *testing.T) {
	t.Parallel()

	queue := &stubDequeuer{messages: []internalRedis.EmailMessage{
		{To: "bad@example.com", Subject: "Booking Confirmation #1"},
		{To: "good@example.com", Subject: "Booking Confirmation #2"},
	}}
	mailer := &recordingMailer{failFor: "bad@example.com"}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		NewEmailWorker(queue, mailer).Run(ctx)
	}()

	deadline := time.After(2 * time.Second)
	for mailer.count() < 1 {
		select {
		case <-deadline:
			t.Fatal("expected the second message to be delivered")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	<-done

	if mailer.count() != 1 {
		t.Fatalf("expected exactly 1 delivery, got %d", mailer.count())
	}
	if mailer.sent[0].To != "good@example.com" {
		t.Errorf("expected delivery to good@example.com, got %s", mailer.sent[0].To)
	}
}
