package repository

import (
	"context"

	"travel/internal/domain"
)

// BookingRepository defines the persistence operations for bookings.
type BookingRepository interface {
	// Create persists a new booking.
	Create(ctx context.Context, booking *domain.Booking) error

	// GetByID retrieves a booking by ID.
	GetByID(ctx context.Context, id string) (*domain.Booking, error)

	// GetAll retrieves all bookings.
	GetAll(ctx context.Context) ([]*domain.Booking, error)

	// Update persists changes to an existing booking.
	Update(ctx context.Context, booking *domain.Booking) error

	// Delete removes a booking.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every booking. Used by the seeder's --clear mode.
	DeleteAll(ctx context.Context) error
}
