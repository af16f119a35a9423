package repository

import (
	"context"

	"travel/internal/domain"
)

// PaymentRepository defines the persistence operations for payments.
type PaymentRepository interface {
	// Create persists a new payment.
	Create(ctx context.Context, payment *domain.Payment) error

	// GetByID retrieves a payment by ID.
	GetByID(ctx context.Context, id string) (*domain.Payment, error)

	// GetByTransactionID retrieves a payment by its gateway transaction
	// reference.
	GetByTransactionID(ctx context.Context, txRef string) (*domain.Payment, error)

	// CountByBooking returns how many payment attempts exist for a booking.
	CountByBooking(ctx context.Context, bookingID string) (int, error)

	// UpdateStatus updates the status of a payment.
	UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error

	// DeleteAll removes every payment. Used by the seeder's --clear mode.
	DeleteAll(ctx context.Context) error
}
