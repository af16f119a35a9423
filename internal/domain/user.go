package domain

import "time"

// User represents a guest who books listings.
type User struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	CreatedAt time.Time
}
