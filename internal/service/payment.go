package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"travel/internal/domain"
	"travel/internal/gateway"
	"travel/internal/repository"
)

// PaymentService orchestrates the booking-payment workflow: turning a
// booking into a gateway transaction and reconciling verification
// results into stored payment state.
type PaymentService struct {
	bookingRepo repository.BookingRepository
	paymentRepo repository.PaymentRepository
	userRepo    repository.UserRepository
	gw          gateway.Client
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	bookingRepo repository.BookingRepository,
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
	gw gateway.Client,
) *PaymentService {
	return &PaymentService{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		gw:          gw,
	}
}

// InitiateResult contains the outcome of initiating a payment. Payload
// is the provider's raw response, returned to the caller either way so
// the front-end can redirect to a hosted checkout page or surface the
// rejection reason.
type InitiateResult struct {
	Accepted bool
	Payment  *domain.Payment
	Payload  json.RawMessage
}

// InitiatePayment starts a new payment attempt for a booking. A Payment
// row is created only after the gateway accepts the transaction; a
// rejected or failed initialization leaves no local state behind.
// Retrying is the caller's re-invocation of this method.
func (s *PaymentService) InitiatePayment(ctx context.Context, bookingID string) (*InitiateResult, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	guest, err := s.userRepo.GetByID(ctx, booking.GuestID)
	if err != nil {
		return nil, err
	}

	// The reference must be unique per attempt, so it carries an attempt
	// counter on top of the booking ID. Reusing the bare booking ID would
	// collide on retried initiations.
	attempts, err := s.paymentRepo.CountByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	txRef := fmt.Sprintf("booking_%s_%d", booking.ID, attempts+1)

	result, err := s.gw.Initialize(ctx, gateway.InitializeRequest{
		Amount:    booking.TotalPrice,
		TxRef:     txRef,
		Email:     guest.Email,
		FirstName: guest.FirstName,
		LastName:  guest.LastName,
	})
	if err != nil {
		return nil, err
	}

	if !result.OK {
		return &InitiateResult{Accepted: false, Payload: result.Raw}, nil
	}

	now := time.Now()
	payment := &domain.Payment{
		ID:            uuid.New().String(),
		BookingID:     booking.ID,
		TransactionID: txRef,
		Amount:        booking.TotalPrice,
		Status:        domain.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return &InitiateResult{Accepted: true, Payment: payment, Payload: result.Raw}, nil
}

// VerifyResult contains the outcome of verifying a payment. Payload is
// the provider's raw verification response.
type VerifyResult struct {
	Completed bool
	Payment   *domain.Payment
	Payload   json.RawMessage
}

// VerifyPayment reconciles the local payment record with the provider's
// view of the transaction. The provider is the source of truth, so the
// gateway is always consulted before local state is touched. Repeated
// calls simply overwrite the status with whatever the provider reports;
// concurrent verifications are last-writer-wins.
func (s *PaymentService) VerifyPayment(ctx context.Context, txRef string) (*VerifyResult, error) {
	if txRef == "" {
		return nil, ErrTxRefRequired
	}

	result, err := s.gw.Verify(ctx, txRef)
	if err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.GetByTransactionID(ctx, txRef)
	if err != nil {
		return nil, err
	}

	status := domain.PaymentStatusFailed
	if result.OK {
		status = domain.PaymentStatusCompleted
	}

	if err := s.paymentRepo.UpdateStatus(ctx, payment.ID, status); err != nil {
		return nil, err
	}
	payment.Status = status

	return &VerifyResult{
		Completed: result.OK,
		Payment:   payment,
		Payload:   result.Raw,
	}, nil
}

// GetPayment retrieves a payment by ID.
func (s *PaymentService) GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if paymentID == "" {
		return nil, ErrInvalidPaymentID
	}

	return s.paymentRepo.GetByID(ctx, paymentID)
}
