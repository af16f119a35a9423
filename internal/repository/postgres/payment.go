package postgres

import (
	"context"
	"database/sql"
	"errors"

	"travel/internal/domain"
	"travel/internal/repository"
)

// PaymentRepository is a PostgreSQL implementation of repository.PaymentRepository.
type PaymentRepository struct {
	q Querier
}

// NewPaymentRepository creates a new PostgreSQL payment repository.
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{q: db}
}

// NewPaymentRepositoryWithTx creates a payment repository using a transaction.
func NewPaymentRepositoryWithTx(tx *sql.Tx) *PaymentRepository {
	return &PaymentRepository{q: tx}
}

// Create persists a new payment.
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (id, booking_id, transaction_id, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.q.ExecContext(ctx, query,
		payment.ID,
		payment.BookingID,
		payment.TransactionID,
		payment.Amount,
		payment.Status,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	return err
}

// GetByID retrieves a payment by ID.
func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `
		SELECT id, booking_id, transaction_id, amount, status, created_at, updated_at
		FROM payments WHERE id = $1
	`

	return r.scanOne(r.q.QueryRowContext(ctx, query, id))
}

// GetByTransactionID retrieves a payment by its gateway transaction reference.
func (r *PaymentRepository) GetByTransactionID(ctx context.Context, txRef string) (*domain.Payment, error) {
	query := `
		SELECT id, booking_id, transaction_id, amount, status, created_at, updated_at
		FROM payments WHERE transaction_id = $1
	`

	return r.scanOne(r.q.QueryRowContext(ctx, query, txRef))
}

// CountByBooking returns how many payment attempts exist for a booking.
func (r *PaymentRepository) CountByBooking(ctx context.Context, bookingID string) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM payments WHERE booking_id = $1`, bookingID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// UpdateStatus updates the status of a payment.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	query := `UPDATE payments SET status = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.q.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}

	return requireRow(result)
}

// DeleteAll removes every payment.
func (r *PaymentRepository) DeleteAll(ctx context.Context) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM payments`)
	return err
}

func (r *PaymentRepository) scanOne(row *sql.Row) (*domain.Payment, error) {
	var payment domain.Payment
	err := row.Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.TransactionID,
		&payment.Amount,
		&payment.Status,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &payment, nil
}
