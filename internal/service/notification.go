package service

import (
	"context"
	"fmt"
	"log"

	"travel/internal/domain"
	"travel/internal/redis"
)

// NotificationService dispatches guest-facing emails. Dispatch is
// fire-and-forget: messages are placed on a queue consumed by an
// independent worker, and the contract ends at "enqueue succeeded".
type NotificationService struct {
	queue redis.EmailQueue
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(queue redis.EmailQueue) *NotificationService {
	return &NotificationService{queue: queue}
}

// SendBookingConfirmation enqueues a confirmation email for a new
// booking. The booking-creation response never waits on delivery, and a
// failed enqueue does not roll the booking back; it is logged and dropped.
func (s *NotificationService) SendBookingConfirmation(ctx context.Context, booking *domain.Booking, guest *domain.User) {
	msg := redis.EmailMessage{
		To:      guest.Email,
		Subject: fmt.Sprintf("Booking Confirmation #%s", booking.ID),
		Body: fmt.Sprintf(
			"Thank you for your booking! Your booking ID is %s.", booking.ID,
		),
	}

	if err := s.queue.Enqueue(ctx, msg); err != nil {
		log.Printf("failed to enqueue confirmation email for booking %s: %v", booking.ID, err)
	}
}
