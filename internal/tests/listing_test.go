package tests

import (
	"context"
	"errors"
	"testing"

	"travel/internal/domain"
	"travel/internal/repository"
	"travel/internal/service"
)

// ──────────────────────────────────────────────
// LISTINGS AND REVIEWS
// ──────────────────────────────────────────────

func newListingService() (*service.ListingService, *MockListingRepository, *MockUserRepository) {
	listingRepo := NewMockListingRepository()
	userRepo := NewMockUserRepository()
	reviewRepo := &MockReviewRepository{}
	return service.NewListingService(listingRepo, reviewRepo, userRepo), listingRepo, userRepo
}

func TestCreateListing_ValidInput_Succeeds(t *testing.T) {
	t.Parallel()

	listingService, _, _ := newListingService()

	listing, err := listingService.CreateListing(context.Background(), service.CreateListingRequest{
		Title:         "Sunny Beach House",
		Description:   "A lovely stay.",
		Location:      "Miami",
		PricePerNight: 120.00,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if listing.ID == "" {
		t.Error("expected listing ID to be set")
	}
}

func TestCreateListing_InvalidInput_Fails(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		req     service.CreateListingRequest
		wantErr error
	}{
		{
			name:    "missing title",
			req:     service.CreateListingRequest{PricePerNight: 100},
			wantErr: service.ErrInvalidTitle,
		},
		{
			name:    "zero price",
			req:     service.CreateListingRequest{Title: "Loft", PricePerNight: 0},
			wantErr: service.ErrInvalidPrice,
		},
		{
			name:    "negative price",
			req:     service.CreateListingRequest{Title: "Loft", PricePerNight: -10},
			wantErr: service.ErrInvalidPrice,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			listingService, _, _ := newListingService()

			_, err := listingService.CreateListing(context.Background(), tc.req)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got: %v", tc.wantErr, err)
			}
		})
	}
}

func TestCreateReview_InvalidRating_Fails(t *testing.T) {
	t.Parallel()

	listingService, listingRepo, userRepo := newListingService()
	listingRepo.AddListing(&domain.Listing{ID: "listing-1", Title: "Loft", PricePerNight: 80})
	userRepo.AddUser(&domain.User{ID: "user-1", Email: "u@example.com"})

	for _, rating := range []int{0, 6, -1} {
		_, err := listingService.CreateReview(context.Background(), service.CreateReviewRequest{
			ListingID: "listing-1",
			UserID:    "user-1",
			Rating:    rating,
		})
		if !errors.Is(err, service.ErrInvalidRating) {
			t.Errorf("rating %d: expected ErrInvalidRating, got: %v", rating, err)
		}
	}
}

func TestCreateReview_UnknownListing_NotFound(t *testing.T) {
	t.Parallel()

	listingService, _, userRepo := newListingService()
	userRepo.AddUser(&domain.User{ID: "user-1", Email: "u@example.com"})

	_, err := listingService.CreateReview(context.Background(), service.CreateReviewRequest{
		ListingID: "missing",
		UserID:    "user-1",
		Rating:    4,
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected repository.ErrNotFound, got: %v", err)
	}
}
