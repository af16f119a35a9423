package domain

import "time"

// PaymentStatus represents the current status of a payment attempt.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
)

// Payment represents one attempt to collect money for a booking.
// A booking may accumulate several attempts; each carries its own
// gateway transaction reference.
type Payment struct {
	ID            string
	BookingID     string
	TransactionID string
	Amount        float64
	Status        PaymentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
