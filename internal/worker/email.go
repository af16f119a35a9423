package worker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/smtp"

	internalRedis "travel/internal/redis"
)

// Mailer delivers a single email message.
type Mailer interface {
	Send(ctx context.Context, msg internalRedis.EmailMessage) error
}

// SMTPMailer sends mail through an SMTP relay.
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPMailer creates a mailer for the given relay. Auth is skipped
// when no username is configured (e.g. a local relay).
func NewSMTPMailer(host, port, username, password, from string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{
		addr: host + ":" + port,
		auth: auth,
		from: from,
	}
}

// Send delivers the message over SMTP.
func (m *SMTPMailer) Send(ctx context.Context, msg internalRedis.EmailMessage) error {
	body := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.from, msg.To, msg.Subject, msg.Body)
	return smtp.SendMail(m.addr, m.auth, m.from, []string{msg.To}, []byte(body))
}

// LogMailer logs messages instead of delivering them. Used when no SMTP
// relay is configured.
type LogMailer struct{}

// Send logs the message.
func (m *LogMailer) Send(ctx context.Context, msg internalRedis.EmailMessage) error {
	log.Printf("[EMAIL] To=%s, Subject=%s", msg.To, msg.Subject)
	return nil
}

// EmailWorker consumes the email task queue and delivers each message
// through the configured mailer. Delivery is best-effort: a failed send
// is logged and the task is dropped, never retried.
type EmailWorker struct {
	queue  internalRedis.EmailDequeuer
	mailer Mailer
}

// NewEmailWorker creates a new EmailWorker.
func NewEmailWorker(queue internalRedis.EmailDequeuer, mailer Mailer) *EmailWorker {
	return &EmailWorker{queue: queue, mailer: mailer}
}

// Run consumes tasks until the context is cancelled.
func (w *EmailWorker) Run(ctx context.Context) {
	log.Println("email worker started")
	for {
		msg, err := w.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				log.Println("email worker stopped")
				return
			}
			log.Printf("email worker: dequeue failed: %v", err)
			continue
		}
		if msg == nil {
			// Timed out waiting; check for cancellation and wait again.
			if ctx.Err() != nil {
				log.Println("email worker stopped")
				return
			}
			continue
		}

		if err := w.mailer.Send(ctx, *msg); err != nil {
			log.Printf("email worker: send to %s failed: %v", msg.To, err)
			continue
		}
		log.Printf("email worker: sent %q to %s", msg.Subject, msg.To)
	}
}
