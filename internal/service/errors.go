package service

import "errors"

var (
	// ErrInvalidBookingID is returned when booking ID is empty.
	ErrInvalidBookingID = errors.New("invalid booking id")

	// ErrInvalidListingID is returned when listing ID is empty.
	ErrInvalidListingID = errors.New("invalid listing id")

	// ErrInvalidGuestID is returned when guest ID is empty.
	ErrInvalidGuestID = errors.New("invalid guest id")

	// ErrInvalidPaymentID is returned when payment ID is empty.
	ErrInvalidPaymentID = errors.New("invalid payment id")

	// ErrInvalidDateRange is returned when a booking's end date is not
	// after its start date.
	ErrInvalidDateRange = errors.New("end date must be after start date")

	// ErrInvalidPrice is returned when a listing price is not positive.
	ErrInvalidPrice = errors.New("price per night must be positive")

	// ErrInvalidTitle is returned when a listing title is empty.
	ErrInvalidTitle = errors.New("title is required")

	// ErrInvalidRating is returned when a review rating is outside 1-5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrTxRefRequired is returned when a verification request carries no
	// transaction reference.
	ErrTxRefRequired = errors.New("tx_ref is required")
)
