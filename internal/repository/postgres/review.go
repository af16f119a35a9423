package postgres

import (
	"context"
	"database/sql"

	"travel/internal/domain"
)

// ReviewRepository is a PostgreSQL implementation of repository.ReviewRepository.
type ReviewRepository struct {
	q Querier
}

// NewReviewRepository creates a new PostgreSQL review repository.
func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{q: db}
}

// NewReviewRepositoryWithTx creates a review repository using a transaction.
func NewReviewRepositoryWithTx(tx *sql.Tx) *ReviewRepository {
	return &ReviewRepository{q: tx}
}

// Create persists a new review.
func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (id, listing_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.q.ExecContext(ctx, query,
		review.ID,
		review.ListingID,
		review.UserID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)

	return err
}

// GetByListing retrieves all reviews for a listing.
func (r *ReviewRepository) GetByListing(ctx context.Context, listingID string) ([]*domain.Review, error) {
	query := `
		SELECT id, listing_id, user_id, rating, comment, created_at
		FROM reviews WHERE listing_id = $1 ORDER BY created_at
	`

	rows, err := r.q.QueryContext(ctx, query, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*domain.Review
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(
			&review.ID,
			&review.ListingID,
			&review.UserID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, &review)
	}

	return reviews, rows.Err()
}

// DeleteAll removes every review.
func (r *ReviewRepository) DeleteAll(ctx context.Context) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM reviews`)
	return err
}
