package tests

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"travel/internal/domain"
	"travel/internal/gateway"
	internalRedis "travel/internal/redis"
	"travel/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK USER REPOSITORY
// ──────────────────────────────────────────────

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	// Error injection
	GetByIDError error
}

// NewMockUserRepository creates a new mock user repository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]*domain.User)}
}

// AddUser adds a user to the mock repository.
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDError != nil {
		return nil, m.GetByIDError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *user
	return &copy, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.User, 0, len(m.users))
	for _, u := range m.users {
		copy := *u
		result = append(result, &copy)
	}
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK LISTING REPOSITORY
// ──────────────────────────────────────────────

// MockListingRepository is a mock implementation of ListingRepository.
type MockListingRepository struct {
	mu       sync.RWMutex
	listings map[string]*domain.Listing

	// Error injection
	CreateError error
}

// NewMockListingRepository creates a new mock listing repository.
func NewMockListingRepository() *MockListingRepository {
	return &MockListingRepository{listings: make(map[string]*domain.Listing)}
}

// AddListing adds a listing to the mock repository.
func (m *MockListingRepository) AddListing(listing *domain.Listing) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings[listing.ID] = listing
}

func (m *MockListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings[listing.ID] = listing
	return nil
}

func (m *MockListingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	listing, ok := m.listings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *listing
	return &copy, nil
}

func (m *MockListingRepository) GetAll(ctx context.Context) ([]*domain.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Listing, 0, len(m.listings))
	for _, l := range m.listings {
		copy := *l
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockListingRepository) Update(ctx context.Context, listing *domain.Listing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.listings[listing.ID]; !ok {
		return repository.ErrNotFound
	}
	m.listings[listing.ID] = listing
	return nil
}

func (m *MockListingRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.listings[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.listings, id)
	return nil
}

func (m *MockListingRepository) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings = make(map[string]*domain.Listing)
	return nil
}

// ──────────────────────────────────────────────
// MOCK BOOKING REPOSITORY
// ──────────────────────────────────────────────

// MockBookingRepository is a mock implementation of BookingRepository.
type MockBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockBookingRepository creates a new mock booking repository.
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{bookings: make(map[string]*domain.Booking)}
}

// AddBooking adds a booking to the mock repository.
func (m *MockBookingRepository) AddBooking(booking *domain.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
	return nil
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	booking, ok := m.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *booking
	return &copy, nil
}

func (m *MockBookingRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		copy := *b
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockBookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[booking.ID]; !ok {
		return repository.ErrNotFound
	}
	m.bookings[booking.ID] = booking
	return nil
}

func (m *MockBookingRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.bookings, id)
	return nil
}

func (m *MockBookingRepository) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings = make(map[string]*domain.Booking)
	return nil
}

// ──────────────────────────────────────────────
// MOCK PAYMENT REPOSITORY
// ──────────────────────────────────────────────

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]*domain.Payment

	// Counters for verification
	CreateCallCount       int32
	UpdateStatusCallCount int32

	// Error injection
	CreateError       error
	UpdateStatusError error
}

// NewMockPaymentRepository creates a new mock payment repository.
func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{payments: make(map[string]*domain.Payment)}
}

// AddPayment adds a payment to the mock repository.
func (m *MockPaymentRepository) AddPayment(payment *domain.Payment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[payment.ID] = payment
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[payment.ID] = payment
	return nil
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payment, ok := m.payments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *payment
	return &copy, nil
}

func (m *MockPaymentRepository) GetByTransactionID(ctx context.Context, txRef string) (*domain.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.payments {
		if p.TransactionID == txRef {
			copy := *p
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockPaymentRepository) CountByBooking(ctx context.Context, bookingID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, p := range m.payments {
		if p.BookingID == bookingID {
			count++
		}
	}
	return count, nil
}

func (m *MockPaymentRepository) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	atomic.AddInt32(&m.UpdateStatusCallCount, 1)
	if m.UpdateStatusError != nil {
		return m.UpdateStatusError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	payment, ok := m.payments[id]
	if !ok {
		return repository.ErrNotFound
	}
	payment.Status = status
	return nil
}

func (m *MockPaymentRepository) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments = make(map[string]*domain.Payment)
	return nil
}

// GetPayment returns the stored payment for test assertions.
func (m *MockPaymentRepository) GetPayment(id string) *domain.Payment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.payments[id]
}

// All returns every stored payment for test assertions.
func (m *MockPaymentRepository) All() []*domain.Payment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Payment, 0, len(m.payments))
	for _, p := range m.payments {
		result = append(result, p)
	}
	return result
}

// ──────────────────────────────────────────────
// MOCK REVIEW REPOSITORY
// ──────────────────────────────────────────────

// MockReviewRepository is a mock implementation of ReviewRepository.
type MockReviewRepository struct {
	mu      sync.RWMutex
	reviews []*domain.Review

	// Error injection
	CreateError error
}

func (m *MockReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reviews = append(m.reviews, review)
	return nil
}

func (m *MockReviewRepository) GetByListing(ctx context.Context, listingID string) ([]*domain.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Review
	for _, r := range m.reviews {
		if r.ListingID == listingID {
			copy := *r
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockReviewRepository) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reviews = nil
	return nil
}

// ──────────────────────────────────────────────
// MOCK GATEWAY CLIENT
// ──────────────────────────────────────────────

// MockGateway is a mock implementation of gateway.Client with scripted
// responses.
type MockGateway struct {
	mu sync.Mutex

	// Scripted responses
	InitializeResult *gateway.Result
	InitializeError  error
	VerifyResult     *gateway.Result
	VerifyError      error

	// Counters for verification
	InitializeCallCount int32
	VerifyCallCount     int32

	// Captured requests
	LastInitialize gateway.InitializeRequest
	LastVerifyRef  string
}

// NewMockGateway creates a mock gateway that accepts everything.
func NewMockGateway() *MockGateway {
	return &MockGateway{
		InitializeResult: &gateway.Result{
			OK:     true,
			Status: "success",
			Raw:    json.RawMessage(`{"status":"success","data":{"checkout_url":"https://checkout.example/abc"}}`),
		},
		VerifyResult: &gateway.Result{
			OK:     true,
			Status: "success",
			Raw:    json.RawMessage(`{"status":"success"}`),
		},
	}
}

func (m *MockGateway) Initialize(ctx context.Context, req gateway.InitializeRequest) (*gateway.Result, error) {
	atomic.AddInt32(&m.InitializeCallCount, 1)
	m.mu.Lock()
	m.LastInitialize = req
	m.mu.Unlock()
	if m.InitializeError != nil {
		return nil, m.InitializeError
	}
	return m.InitializeResult, nil
}

func (m *MockGateway) Verify(ctx context.Context, txRef string) (*gateway.Result, error) {
	atomic.AddInt32(&m.VerifyCallCount, 1)
	m.mu.Lock()
	m.LastVerifyRef = txRef
	m.mu.Unlock()
	if m.VerifyError != nil {
		return nil, m.VerifyError
	}
	return m.VerifyResult, nil
}

// ──────────────────────────────────────────────
// MOCK EMAIL QUEUE
// ──────────────────────────────────────────────

// MockEmailQueue is a mock implementation of redis.EmailQueue that
// records enqueued messages.
type MockEmailQueue struct {
	mu       sync.Mutex
	Messages []internalRedis.EmailMessage

	// Error injection
	EnqueueError error
}

// NewMockEmailQueue creates a new mock email queue.
func NewMockEmailQueue() *MockEmailQueue {
	return &MockEmailQueue{}
}

func (m *MockEmailQueue) Enqueue(ctx context.Context, msg internalRedis.EmailMessage) error {
	if m.EnqueueError != nil {
		return m.EnqueueError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, msg)
	return nil
}

// Enqueued returns the recorded messages.
func (m *MockEmailQueue) Enqueued() []internalRedis.EmailMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]internalRedis.EmailMessage(nil), m.Messages...)
}
