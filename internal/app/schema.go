package app

import (
	"context"
	"database/sql"
	"fmt"
)

// schema holds the idempotent DDL applied at startup. Statements run in
// order; foreign keys require parents first.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS listings (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		location TEXT NOT NULL,
		price_per_night NUMERIC(10,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id TEXT PRIMARY KEY,
		listing_id TEXT NOT NULL REFERENCES listings(id) ON DELETE CASCADE,
		guest_id TEXT NOT NULL REFERENCES users(id),
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		total_price NUMERIC(10,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id TEXT PRIMARY KEY,
		booking_id TEXT NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
		transaction_id TEXT NOT NULL UNIQUE,
		amount NUMERIC(10,2) NOT NULL,
		status TEXT NOT NULL DEFAULT 'Pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id TEXT PRIMARY KEY,
		listing_id TEXT NOT NULL REFERENCES listings(id) ON DELETE CASCADE,
		user_id TEXT NOT NULL REFERENCES users(id),
		rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_booking_id ON payments(booking_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_listing_id ON bookings(listing_id)`,
}

// EnsureSchema applies the schema DDL. Both the server and the seeder
// call this before touching the database.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
