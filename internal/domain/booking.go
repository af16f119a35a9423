package domain

import "time"

// Booking represents a guest's reservation of a listing.
type Booking struct {
	ID         string
	ListingID  string
	GuestID    string
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice float64
	CreatedAt  time.Time
}

// Nights returns the number of nights covered by the booking.
func (b *Booking) Nights() int {
	return int(b.EndDate.Sub(b.StartDate).Hours() / 24)
}
