package domain

import "time"

// Listing represents a bookable travel listing.
type Listing struct {
	ID            string
	Title         string
	Description   string
	Location      string
	PricePerNight float64
	CreatedAt     time.Time
}
