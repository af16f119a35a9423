package postgres

import (
	"context"
	"database/sql"
	"errors"

	"travel/internal/domain"
	"travel/internal/repository"
)

// ListingRepository is a PostgreSQL implementation of repository.ListingRepository.
type ListingRepository struct {
	q Querier
}

// NewListingRepository creates a new PostgreSQL listing repository.
func NewListingRepository(db *sql.DB) *ListingRepository {
	return &ListingRepository{q: db}
}

// NewListingRepositoryWithTx creates a listing repository using a transaction.
func NewListingRepositoryWithTx(tx *sql.Tx) *ListingRepository {
	return &ListingRepository{q: tx}
}

// Create persists a new listing.
func (r *ListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	query := `
		INSERT INTO listings (id, title, description, location, price_per_night, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.q.ExecContext(ctx, query,
		listing.ID,
		listing.Title,
		listing.Description,
		listing.Location,
		listing.PricePerNight,
		listing.CreatedAt,
	)

	return err
}

// GetByID retrieves a listing by ID.
func (r *ListingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `
		SELECT id, title, description, location, price_per_night, created_at
		FROM listings WHERE id = $1
	`

	var listing domain.Listing
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&listing.ID,
		&listing.Title,
		&listing.Description,
		&listing.Location,
		&listing.PricePerNight,
		&listing.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &listing, nil
}

// GetAll retrieves all listings.
func (r *ListingRepository) GetAll(ctx context.Context) ([]*domain.Listing, error) {
	query := `
		SELECT id, title, description, location, price_per_night, created_at
		FROM listings ORDER BY created_at
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*domain.Listing
	for rows.Next() {
		var listing domain.Listing
		if err := rows.Scan(
			&listing.ID,
			&listing.Title,
			&listing.Description,
			&listing.Location,
			&listing.PricePerNight,
			&listing.CreatedAt,
		); err != nil {
			return nil, err
		}
		listings = append(listings, &listing)
	}

	return listings, rows.Err()
}

// Update persists changes to an existing listing.
func (r *ListingRepository) Update(ctx context.Context, listing *domain.Listing) error {
	query := `
		UPDATE listings
		SET title = $1, description = $2, location = $3, price_per_night = $4
		WHERE id = $5
	`

	result, err := r.q.ExecContext(ctx, query,
		listing.Title,
		listing.Description,
		listing.Location,
		listing.PricePerNight,
		listing.ID,
	)
	if err != nil {
		return err
	}

	return requireRow(result)
}

// Delete removes a listing.
func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return requireRow(result)
}

// DeleteAll removes every listing.
func (r *ListingRepository) DeleteAll(ctx context.Context) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM listings`)
	return err
}
