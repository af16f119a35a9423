package tests

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"travel/internal/domain"
	"travel/internal/repository"
	"travel/internal/service"
)

// ──────────────────────────────────────────────
// BOOKING CREATION
// ──────────────────────────────────────────────

func seedListingAndGuest(listingRepo *MockListingRepository, userRepo *MockUserRepository) (*domain.Listing, *domain.User) {
	listing := &domain.Listing{
		ID:            "listing-1",
		Title:         "Sunny Beach House",
		Location:      "Miami",
		PricePerNight: 50.00,
	}
	listingRepo.AddListing(listing)

	guest := &domain.User{
		ID:        "guest-1",
		Email:     "guest@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
	userRepo.AddUser(guest)

	return listing, guest
}

func TestCreateBooking_ComputesTotalFromNightlyRate(t *testing.T) {
	t.Parallel()

	bookingRepo := NewMockBookingRepository()
	listingRepo := NewMockListingRepository()
	userRepo := NewMockUserRepository()
	queue := NewMockEmailQueue()

	listing, guest := seedListingAndGuest(listingRepo, userRepo)

	bookingService := service.NewBookingService(bookingRepo, listingRepo, userRepo,
		service.NewNotificationService(queue))

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	booking, err := bookingService.CreateBooking(context.Background(), service.CreateBookingRequest{
		ListingID: listing.ID,
		GuestID:   guest.ID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 3),
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if booking.TotalPrice != 150.00 {
		t.Errorf("expected total 150.00 for 3 nights at 50.00, got %.2f", booking.TotalPrice)
	}
}

func TestCreateBooking_EnqueuesConfirmationEmail(t *testing.T) {
	t.Parallel()

	bookingRepo := NewMockBookingRepository()
	listingRepo := NewMockListingRepository()
	userRepo := NewMockUserRepository()
	queue := NewMockEmailQueue()

	listing, guest := seedListingAndGuest(listingRepo, userRepo)

	bookingService := service.NewBookingService(bookingRepo, listingRepo, userRepo,
		service.NewNotificationService(queue))

	start := time.Now()
	booking, err := bookingService.CreateBooking(context.Background(), service.CreateBookingRequest{
		ListingID: listing.ID,
		GuestID:   guest.ID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 2),
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	messages := queue.Enqueued()
	if len(messages) != 1 {
		t.Fatalf("expected exactly one email enqueued, got %d", len(messages))
	}
	if messages[0].To != guest.Email {
		t.Errorf("expected email to %s, got %s", guest.Email, messages[0].To)
	}
	if !strings.Contains(messages[0].Subject, booking.ID) {
		t.Errorf("expected subject to carry booking id, got %q", messages[0].Subject)
	}
}

func TestCreateBooking_EnqueueFailureDoesNotFailBooking(t *testing.T) {
	t.Parallel()

	bookingRepo := NewMockBookingRepository()
	listingRepo := NewMockListingRepository()
	userRepo := NewMockUserRepository()
	queue := NewMockEmailQueue()
	queue.EnqueueError = errors.New("redis down")

	listing, guest := seedListingAndGuest(listingRepo, userRepo)

	bookingService := service.NewBookingService(bookingRepo, listingRepo, userRepo,
		service.NewNotificationService(queue))

	start := time.Now()
	booking, err := bookingService.CreateBooking(context.Background(), service.CreateBookingRequest{
		ListingID: listing.ID,
		GuestID:   guest.ID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 1),
	})
	if err != nil {
		t.Fatalf("expected booking creation to succeed despite enqueue failure, got: %v", err)
	}
	if booking == nil || booking.ID == "" {
		t.Fatal("expected booking to be created")
	}
}

func TestCreateBooking_InvalidDateRange_Fails(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{
			name:  "end before start",
			start: time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "zero-night stay",
			start: time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bookingRepo := NewMockBookingRepository()
			listingRepo := NewMockListingRepository()
			userRepo := NewMockUserRepository()

			listing, guest := seedListingAndGuest(listingRepo, userRepo)

			bookingService := service.NewBookingService(bookingRepo, listingRepo, userRepo,
				service.NewNotificationService(NewMockEmailQueue()))

			_, err := bookingService.CreateBooking(context.Background(), service.CreateBookingRequest{
				ListingID: listing.ID,
				GuestID:   guest.ID,
				StartDate: tc.start,
				EndDate:   tc.end,
			})
			if !errors.Is(err, service.ErrInvalidDateRange) {
				t.Fatalf("expected ErrInvalidDateRange, got: %v", err)
			}
		})
	}
}

func TestCreateBooking_UnknownListing_NotFound(t *testing.T) {
	t.Parallel()

	bookingRepo := NewMockBookingRepository()
	listingRepo := NewMockListingRepository()
	userRepo := NewMockUserRepository()

	userRepo.AddUser(&domain.User{ID: "guest-1", Email: "guest@example.com"})

	bookingService := service.NewBookingService(bookingRepo, listingRepo, userRepo,
		service.NewNotificationService(NewMockEmailQueue()))

	start := time.Now()
	_, err := bookingService.CreateBooking(context.Background(), service.CreateBookingRequest{
		ListingID: "missing-listing",
		GuestID:   "guest-1",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 2),
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected repository.ErrNotFound, got: %v", err)
	}
	if bookingRepo.CreateCallCount != 0 {
		t.Error("expected no booking row for an unknown listing")
	}
}

func TestUpdateBooking_RecomputesTotal(t *testing.T) {
	t.Parallel()

	bookingRepo := NewMockBookingRepository()
	listingRepo := NewMockListingRepository()
	userRepo := NewMockUserRepository()

	listing, guest := seedListingAndGuest(listingRepo, userRepo)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	bookingRepo.AddBooking(&domain.Booking{
		ID:         "booking-1",
		ListingID:  listing.ID,
		GuestID:    guest.ID,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 2),
		TotalPrice: 100.00,
	})

	bookingService := service.NewBookingService(bookingRepo, listingRepo, userRepo,
		service.NewNotificationService(NewMockEmailQueue()))

	updated, err := bookingService.UpdateBooking(context.Background(), service.UpdateBookingRequest{
		BookingID: "booking-1",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 5),
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if updated.TotalPrice != 250.00 {
		t.Errorf("expected total 250.00 for 5 nights at 50.00, got %.2f", updated.TotalPrice)
	}
}
