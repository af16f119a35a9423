package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"travel/internal/domain"
	"travel/internal/repository"
)

// ListingService handles listing operations.
type ListingService struct {
	listingRepo repository.ListingRepository
	reviewRepo  repository.ReviewRepository
	userRepo    repository.UserRepository
}

// NewListingService creates a new ListingService.
func NewListingService(
	listingRepo repository.ListingRepository,
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
) *ListingService {
	return &ListingService{
		listingRepo: listingRepo,
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
	}
}

// CreateListingRequest contains the parameters for creating a listing.
type CreateListingRequest struct {
	Title         string
	Description   string
	Location      string
	PricePerNight float64
}

// CreateListing creates a new listing.
func (s *ListingService) CreateListing(ctx context.Context, req CreateListingRequest) (*domain.Listing, error) {
	if req.Title == "" {
		return nil, ErrInvalidTitle
	}
	if req.PricePerNight <= 0 {
		return nil, ErrInvalidPrice
	}

	listing := &domain.Listing{
		ID:            uuid.New().String(),
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
		CreatedAt:     time.Now(),
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// UpdateListingRequest contains the parameters for updating a listing.
type UpdateListingRequest struct {
	ListingID     string
	Title         string
	Description   string
	Location      string
	PricePerNight float64
}

// UpdateListing updates an existing listing.
func (s *ListingService) UpdateListing(ctx context.Context, req UpdateListingRequest) (*domain.Listing, error) {
	if req.ListingID == "" {
		return nil, ErrInvalidListingID
	}
	if req.Title == "" {
		return nil, ErrInvalidTitle
	}
	if req.PricePerNight <= 0 {
		return nil, ErrInvalidPrice
	}

	listing, err := s.listingRepo.GetByID(ctx, req.ListingID)
	if err != nil {
		return nil, err
	}

	listing.Title = req.Title
	listing.Description = req.Description
	listing.Location = req.Location
	listing.PricePerNight = req.PricePerNight

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// GetListing retrieves a listing by ID.
func (s *ListingService) GetListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	if listingID == "" {
		return nil, ErrInvalidListingID
	}

	return s.listingRepo.GetByID(ctx, listingID)
}

// GetAllListings retrieves all listings.
func (s *ListingService) GetAllListings(ctx context.Context) ([]*domain.Listing, error) {
	return s.listingRepo.GetAll(ctx)
}

// DeleteListing removes a listing.
func (s *ListingService) DeleteListing(ctx context.Context, listingID string) error {
	if listingID == "" {
		return ErrInvalidListingID
	}

	return s.listingRepo.Delete(ctx, listingID)
}

// CreateReviewRequest contains the parameters for reviewing a listing.
type CreateReviewRequest struct {
	ListingID string
	UserID    string
	Rating    int
	Comment   string
}

// CreateReview adds a review to a listing.
func (s *ListingService) CreateReview(ctx context.Context, req CreateReviewRequest) (*domain.Review, error) {
	if req.ListingID == "" {
		return nil, ErrInvalidListingID
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	// Both sides of the relation must exist.
	if _, err := s.listingRepo.GetByID(ctx, req.ListingID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		ID:        uuid.New().String(),
		ListingID: req.ListingID,
		UserID:    req.UserID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// GetListingReviews retrieves all reviews for a listing.
func (s *ListingService) GetListingReviews(ctx context.Context, listingID string) ([]*domain.Review, error) {
	if listingID == "" {
		return nil, ErrInvalidListingID
	}

	if _, err := s.listingRepo.GetByID(ctx, listingID); err != nil {
		return nil, err
	}

	return s.reviewRepo.GetByListing(ctx, listingID)
}
