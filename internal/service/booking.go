package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"travel/internal/domain"
	"travel/internal/repository"
)

// BookingService handles booking operations.
type BookingService struct {
	bookingRepo         repository.BookingRepository
	listingRepo         repository.ListingRepository
	userRepo            repository.UserRepository
	notificationService *NotificationService
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
	notificationService *NotificationService,
) *BookingService {
	return &BookingService{
		bookingRepo:         bookingRepo,
		listingRepo:         listingRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
	}
}

// CreateBookingRequest contains the parameters for creating a booking.
type CreateBookingRequest struct {
	ListingID string
	GuestID   string
	StartDate time.Time
	EndDate   time.Time
}

// CreateBooking creates a new booking and enqueues the confirmation
// email. The total price is derived from the listing's nightly rate.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if req.ListingID == "" {
		return nil, ErrInvalidListingID
	}
	if req.GuestID == "" {
		return nil, ErrInvalidGuestID
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, ErrInvalidDateRange
	}

	listing, err := s.listingRepo.GetByID(ctx, req.ListingID)
	if err != nil {
		return nil, err
	}

	guest, err := s.userRepo.GetByID(ctx, req.GuestID)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:        uuid.New().String(),
		ListingID: listing.ID,
		GuestID:   guest.ID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		CreatedAt: time.Now(),
	}
	booking.TotalPrice = float64(booking.Nights()) * listing.PricePerNight

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	if s.notificationService != nil {
		s.notificationService.SendBookingConfirmation(ctx, booking, guest)
	}

	return booking, nil
}

// UpdateBookingRequest contains the parameters for rescheduling a booking.
type UpdateBookingRequest struct {
	BookingID string
	StartDate time.Time
	EndDate   time.Time
}

// UpdateBooking reschedules a booking and recomputes its total price
// from the listing's current nightly rate.
func (s *BookingService) UpdateBooking(ctx context.Context, req UpdateBookingRequest) (*domain.Booking, error) {
	if req.BookingID == "" {
		return nil, ErrInvalidBookingID
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, ErrInvalidDateRange
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	listing, err := s.listingRepo.GetByID(ctx, booking.ListingID)
	if err != nil {
		return nil, err
	}

	booking.StartDate = req.StartDate
	booking.EndDate = req.EndDate
	booking.TotalPrice = float64(booking.Nights()) * listing.PricePerNight

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetBooking retrieves a booking by ID.
func (s *BookingService) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}

	return s.bookingRepo.GetByID(ctx, bookingID)
}

// GetAllBookings retrieves all bookings.
func (s *BookingService) GetAllBookings(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.GetAll(ctx)
}

// DeleteBooking removes a booking.
func (s *BookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	if bookingID == "" {
		return ErrInvalidBookingID
	}

	return s.bookingRepo.Delete(ctx, bookingID)
}
