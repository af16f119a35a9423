package tests

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"travel/internal/domain"
	"travel/internal/gateway"
	"travel/internal/repository"
	"travel/internal/service"
)

// ──────────────────────────────────────────────
// PAYMENT VERIFICATION
// ──────────────────────────────────────────────

func pendingPayment(paymentRepo *MockPaymentRepository) *domain.Payment {
	payment := &domain.Payment{
		ID:            "payment-1",
		BookingID:     "booking-42",
		TransactionID: "booking_booking-42_1",
		Amount:        150.00,
		Status:        domain.PaymentStatusPending,
	}
	paymentRepo.AddPayment(payment)
	return payment
}

func TestVerifyPayment_GatewaySuccess_MarksCompleted(t *testing.T) {
	t.Parallel()

	paymentRepo := NewMockPaymentRepository()
	gw := NewMockGateway()

	payment := pendingPayment(paymentRepo)

	paymentService := service.NewPaymentService(NewMockBookingRepository(), paymentRepo, NewMockUserRepository(), gw)

	result, err := paymentService.VerifyPayment(context.Background(), payment.TransactionID)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if !result.Completed {
		t.Error("expected verification to report completion")
	}
	if got := paymentRepo.GetPayment(payment.ID).Status; got != domain.PaymentStatusCompleted {
		t.Errorf("expected status %s, got %s", domain.PaymentStatusCompleted, got)
	}
	if gw.LastVerifyRef != payment.TransactionID {
		t.Errorf("expected gateway queried with %s, got %s", payment.TransactionID, gw.LastVerifyRef)
	}
}

func TestVerifyPayment_GatewayReportsFailure_MarksFailed(t *testing.T) {
	t.Parallel()

	paymentRepo := NewMockPaymentRepository()
	gw := NewMockGateway()
	gw.VerifyResult = &gateway.Result{
		OK:     false,
		Status: "failed",
		Raw:    json.RawMessage(`{"status":"failed"}`),
	}

	payment := pendingPayment(paymentRepo)

	paymentService := service.NewPaymentService(NewMockBookingRepository(), paymentRepo, NewMockUserRepository(), gw)

	result, err := paymentService.VerifyPayment(context.Background(), payment.TransactionID)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if result.Completed {
		t.Error("expected verification to report failure")
	}
	if got := paymentRepo.GetPayment(payment.ID).Status; got != domain.PaymentStatusFailed {
		t.Errorf("expected status %s, got %s", domain.PaymentStatusFailed, got)
	}
}

func TestVerifyPayment_UnknownReference_NotFound(t *testing.T) {
	t.Parallel()

	paymentRepo := NewMockPaymentRepository()
	gw := NewMockGateway()

	paymentService := service.NewPaymentService(NewMockBookingRepository(), paymentRepo, NewMockUserRepository(), gw)

	_, err := paymentService.VerifyPayment(context.Background(), "unknown_ref")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected repository.ErrNotFound, got: %v", err)
	}

	// The provider stays the source of truth, so the gateway is still
	// consulted, but no local state changes.
	if gw.VerifyCallCount != 1 {
		t.Errorf("expected exactly one gateway call, got %d", gw.VerifyCallCount)
	}
	if paymentRepo.UpdateStatusCallCount != 0 {
		t.Error("expected no status updates for an unknown reference")
	}
}

func TestVerifyPayment_EmptyReference_FailsBeforeGatewayCall(t *testing.T) {
	t.Parallel()

	gw := NewMockGateway()
	paymentService := service.NewPaymentService(NewMockBookingRepository(), NewMockPaymentRepository(), NewMockUserRepository(), gw)

	_, err := paymentService.VerifyPayment(context.Background(), "")
	if !errors.Is(err, service.ErrTxRefRequired) {
		t.Fatalf("expected ErrTxRefRequired, got: %v", err)
	}
	if gw.VerifyCallCount != 0 {
		t.Errorf("expected no gateway call, got %d", gw.VerifyCallCount)
	}
}

func TestVerifyPayment_GatewayUnreachable_LocalStateUntouched(t *testing.T) {
	t.Parallel()

	paymentRepo := NewMockPaymentRepository()
	gw := NewMockGateway()
	gw.VerifyError = fmt.Errorf("%w: timeout", gateway.ErrUnavailable)

	payment := pendingPayment(paymentRepo)

	paymentService := service.NewPaymentService(NewMockBookingRepository(), paymentRepo, NewMockUserRepository(), gw)

	_, err := paymentService.VerifyPayment(context.Background(), payment.TransactionID)
	if !errors.Is(err, gateway.ErrUnavailable) {
		t.Fatalf("expected gateway.ErrUnavailable, got: %v", err)
	}
	if got := paymentRepo.GetPayment(payment.ID).Status; got != domain.PaymentStatusPending {
		t.Errorf("expected status to stay %s, got %s", domain.PaymentStatusPending, got)
	}
}

func TestVerifyPayment_RepeatedCalls_Idempotent(t *testing.T) {
	t.Parallel()

	paymentRepo := NewMockPaymentRepository()
	gw := NewMockGateway()

	payment := pendingPayment(paymentRepo)

	paymentService := service.NewPaymentService(NewMockBookingRepository(), paymentRepo, NewMockUserRepository(), gw)

	for i := 0; i < 2; i++ {
		result, err := paymentService.VerifyPayment(context.Background(), payment.TransactionID)
		if err != nil {
			t.Fatalf("verification %d failed: %v", i+1, err)
		}
		if !result.Completed {
			t.Fatalf("verification %d did not report completion", i+1)
		}
	}

	// Status is re-derived from the gateway each time and overwritten with
	// the same value; it never reverts to Pending.
	if got := paymentRepo.GetPayment(payment.ID).Status; got != domain.PaymentStatusCompleted {
		t.Errorf("expected status %s after repeated verification, got %s", domain.PaymentStatusCompleted, got)
	}
}
