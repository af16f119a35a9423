package postgres

import (
	"context"
	"database/sql"
	"errors"

	"travel/internal/domain"
	"travel/internal/repository"
)

// BookingRepository is a PostgreSQL implementation of repository.BookingRepository.
type BookingRepository struct {
	q Querier
}

// NewBookingRepository creates a new PostgreSQL booking repository.
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{q: db}
}

// NewBookingRepositoryWithTx creates a booking repository using a transaction.
func NewBookingRepositoryWithTx(tx *sql.Tx) *BookingRepository {
	return &BookingRepository{q: tx}
}

// Create persists a new booking.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (id, listing_id, guest_id, start_date, end_date, total_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.q.ExecContext(ctx, query,
		booking.ID,
		booking.ListingID,
		booking.GuestID,
		booking.StartDate,
		booking.EndDate,
		booking.TotalPrice,
		booking.CreatedAt,
	)

	return err
}

// GetByID retrieves a booking by ID.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `
		SELECT id, listing_id, guest_id, start_date, end_date, total_price, created_at
		FROM bookings WHERE id = $1
	`

	var booking domain.Booking
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&booking.ID,
		&booking.ListingID,
		&booking.GuestID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.TotalPrice,
		&booking.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &booking, nil
}

// GetAll retrieves all bookings.
func (r *BookingRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	query := `
		SELECT id, listing_id, guest_id, start_date, end_date, total_price, created_at
		FROM bookings ORDER BY created_at
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		var booking domain.Booking
		if err := rows.Scan(
			&booking.ID,
			&booking.ListingID,
			&booking.GuestID,
			&booking.StartDate,
			&booking.EndDate,
			&booking.TotalPrice,
			&booking.CreatedAt,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, &booking)
	}

	return bookings, rows.Err()
}

// Update persists changes to an existing booking.
func (r *BookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	query := `
		UPDATE bookings
		SET start_date = $1, end_date = $2, total_price = $3
		WHERE id = $4
	`

	result, err := r.q.ExecContext(ctx, query,
		booking.StartDate,
		booking.EndDate,
		booking.TotalPrice,
		booking.ID,
	)
	if err != nil {
		return err
	}

	return requireRow(result)
}

// Delete removes a booking.
func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return requireRow(result)
}

// DeleteAll removes every booking.
func (r *BookingRepository) DeleteAll(ctx context.Context) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM bookings`)
	return err
}
