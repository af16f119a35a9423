package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrUnavailable is returned when the provider cannot be reached or
// returns a response the client cannot interpret. It is distinct from a
// well-formed negative response, which is reported through Result.OK.
var ErrUnavailable = errors.New("payment gateway unavailable")

// Config holds the settings for talking to the payment provider.
// The secret and URLs are injected at construction; nothing is read
// from ambient process state at call time.
type Config struct {
	BaseURL     string
	SecretKey   string
	Currency    string
	CallbackURL string
	Timeout     time.Duration
}

// InitializeRequest contains the parameters for starting a transaction.
type InitializeRequest struct {
	Amount    float64
	TxRef     string
	Email     string
	FirstName string
	LastName  string
}

// Result is the normalized outcome of a gateway call. Raw preserves the
// provider's full payload so callers can pass it through unchanged; it
// includes provider-specific data such as the hosted checkout URL.
type Result struct {
	OK     bool
	Status string
	Raw    json.RawMessage
}

// Client is the interface for the external payment provider.
type Client interface {
	// Initialize starts a new transaction for the given reference.
	Initialize(ctx context.Context, req InitializeRequest) (*Result, error)

	// Verify asks the provider for the current status of a previously
	// initialized transaction.
	Verify(ctx context.Context, txRef string) (*Result, error)
}
