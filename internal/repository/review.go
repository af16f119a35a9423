package repository

import (
	"context"

	"travel/internal/domain"
)

// ReviewRepository defines the persistence operations for reviews.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *domain.Review) error

	// GetByListing retrieves all reviews for a listing.
	GetByListing(ctx context.Context, listingID string) ([]*domain.Review, error)

	// DeleteAll removes every review. Used by the seeder's --clear mode.
	DeleteAll(ctx context.Context) error
}
