// Command seed populates the database with sample users, listings,
// bookings and reviews.
//
// Usage:
//
//	seed
//	seed -clear            # delete existing seeded data first
//	seed -listings 20 -users 10
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"travel/internal/app"
	"travel/internal/config"
	"travel/internal/domain"
	"travel/internal/repository/postgres"
)

var (
	clearFirst  = flag.Bool("clear", false, "delete existing listings, bookings, payments and reviews before seeding")
	numListings = flag.Int("listings", 10, "number of listings to create")
	numUsers    = flag.Int("users", 6, "number of users to create")
)

var titles = []string{
	"Sunny Beach House",
	"Cozy Mountain Cabin",
	"Downtown Studio Apartment",
	"Riverside Cottage",
	"Luxury Villa with Pool",
	"Quiet Country Bungalow",
	"Modern Loft",
	"Seaside Bungalow",
	"Historic Townhouse",
	"Forest Retreat",
	"City Penthouse",
	"Lakefront Condo",
}

var locations = []string{
	"Miami", "Aspen", "New York", "Los Angeles", "Seattle",
	"San Francisco", "Portland", "Austin", "Chicago", "Boston",
}

func main() {
	flag.Parse()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := app.NewDatabase(ctx, cfg.Database, nil)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := app.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	// All writes happen in one transaction so a failed run leaves no
	// partial data behind.
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Fatalf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if err := seed(ctx, tx); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("failed to commit: %v", err)
	}

	log.Println("Seeding complete!")
}

func seed(ctx context.Context, tx *sql.Tx) error {
	userRepo := postgres.NewUserRepositoryWithTx(tx)
	listingRepo := postgres.NewListingRepositoryWithTx(tx)
	bookingRepo := postgres.NewBookingRepositoryWithTx(tx)
	paymentRepo := postgres.NewPaymentRepositoryWithTx(tx)
	reviewRepo := postgres.NewReviewRepositoryWithTx(tx)

	if *clearFirst {
		log.Println("Clearing existing seeded data...")
		// Delete in order to avoid FK issues.
		if err := paymentRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clearing payments: %w", err)
		}
		if err := bookingRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clearing bookings: %w", err)
		}
		if err := reviewRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clearing reviews: %w", err)
		}
		if err := listingRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clearing listings: %w", err)
		}
	}

	log.Println("Creating users...")
	users := make([]*domain.User, 0, *numUsers)
	for i := 1; i <= *numUsers; i++ {
		email := fmt.Sprintf("seed_user_%d@example.com", i)

		// Reuse existing seed users so repeated runs stay idempotent.
		existing, err := userRepo.GetByEmail(ctx, email)
		if err == nil {
			users = append(users, existing)
			continue
		}

		user := &domain.User{
			ID:        uuid.New().String(),
			Email:     email,
			FirstName: "Seed",
			LastName:  fmt.Sprintf("User%d", i),
			CreatedAt: time.Now(),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("creating user %s: %w", email, err)
		}
		users = append(users, user)
	}

	log.Printf("Creating %d listings...", *numListings)
	listings := make([]*domain.Listing, 0, *numListings)
	for i := 0; i < *numListings; i++ {
		location := locations[rand.Intn(len(locations))]
		listing := &domain.Listing{
			ID:            uuid.New().String(),
			Title:         fmt.Sprintf("%s #%d", titles[i%len(titles)], i+1),
			Description:   fmt.Sprintf("A lovely stay at %s. Perfect for guests who love comfort.", location),
			Location:      location,
			PricePerNight: float64(50 + rand.Intn(351)),
			CreatedAt:     time.Now(),
		}
		if err := listingRepo.Create(ctx, listing); err != nil {
			return fmt.Errorf("creating listing %q: %w", listing.Title, err)
		}
		listings = append(listings, listing)
	}

	log.Println("Creating bookings...")
	bookingsCreated := 0
	for _, listing := range listings {
		for i := 0; i < rand.Intn(4); i++ {
			guest := users[rand.Intn(len(users))]

			start := time.Now().AddDate(0, 0, rand.Intn(31))
			nights := 1 + rand.Intn(7)
			end := start.AddDate(0, 0, nights)

			booking := &domain.Booking{
				ID:         uuid.New().String(),
				ListingID:  listing.ID,
				GuestID:    guest.ID,
				StartDate:  start,
				EndDate:    end,
				TotalPrice: float64(nights) * listing.PricePerNight,
				CreatedAt:  time.Now(),
			}
			if err := bookingRepo.Create(ctx, booking); err != nil {
				return fmt.Errorf("creating booking: %w", err)
			}
			bookingsCreated++
		}
	}
	log.Printf("Created %d bookings.", bookingsCreated)

	log.Println("Creating reviews...")
	reviewsCreated := 0
	for _, listing := range listings {
		for i := 0; i < rand.Intn(4); i++ {
			reviewer := users[rand.Intn(len(users))]
			rating := 1 + rand.Intn(5)

			review := &domain.Review{
				ID:        uuid.New().String(),
				ListingID: listing.ID,
				UserID:    reviewer.ID,
				Rating:    rating,
				Comment:   fmt.Sprintf("Sample review: rating %d.", rating),
				CreatedAt: time.Now(),
			}
			if err := reviewRepo.Create(ctx, review); err != nil {
				return fmt.Errorf("creating review: %w", err)
			}
			reviewsCreated++
		}
	}
	log.Printf("Created %d reviews.", reviewsCreated)

	return nil
}
