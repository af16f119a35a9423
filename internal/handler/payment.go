package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travel/internal/service"
)

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// VerifyPaymentRequest is the HTTP request body for verifying a payment.
type VerifyPaymentRequest struct {
	TxRef string `json:"tx_ref"`
}

// PaymentResponse is the HTTP response for payment data.
type PaymentResponse struct {
	ID            string    `json:"id"`
	BookingID     string    `json:"booking_id"`
	TransactionID string    `json:"transaction_id"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Verify handles POST /api/payments/verify
//
// The missing-tx_ref check happens before any gateway call; an unknown
// reference is a local 404 regardless of what the provider reports.
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.TxRef == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "tx_ref is required"})
		return
	}

	result, err := h.paymentService.VerifyPayment(c.Request.Context(), req.TxRef)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", result.Payload)
}

// Get handles GET /api/payments/:id
func (h *PaymentHandler) Get(c *gin.Context) {
	payment, err := h.paymentService.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, PaymentResponse{
		ID:            payment.ID,
		BookingID:     payment.BookingID,
		TransactionID: payment.TransactionID,
		Amount:        payment.Amount,
		Status:        string(payment.Status),
		CreatedAt:     payment.CreatedAt,
		UpdatedAt:     payment.UpdatedAt,
	})
}
