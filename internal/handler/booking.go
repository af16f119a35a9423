package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travel/internal/domain"
	"travel/internal/service"
)

// dateLayout is the wire format for booking dates.
const dateLayout = "2006-01-02"

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	bookingService *service.BookingService
	paymentService *service.PaymentService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService *service.BookingService, paymentService *service.PaymentService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		paymentService: paymentService,
	}
}

// CreateBookingRequest is the HTTP request body for creating a booking.
type CreateBookingRequest struct {
	ListingID string `json:"listing_id"`
	GuestID   string `json:"guest_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// UpdateBookingRequest is the HTTP request body for rescheduling a booking.
type UpdateBookingRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// BookingResponse is the HTTP response for booking data.
type BookingResponse struct {
	ID         string    `json:"id"`
	ListingID  string    `json:"listing_id"`
	GuestID    string    `json:"guest_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		ListingID:  b.ListingID,
		GuestID:    b.GuestID,
		StartDate:  b.StartDate.Format(dateLayout),
		EndDate:    b.EndDate.Format(dateLayout),
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt,
	}
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "start_date must be YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "end_date must be YYYY-MM-DD"})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), service.CreateBookingRequest{
		ListingID: req.ListingID,
		GuestID:   req.GuestID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toBookingResponse(booking))
}

// GetAll handles GET /api/bookings
func (h *BookingHandler) GetAll(c *gin.Context) {
	bookings, err := h.bookingService.GetAllBookings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		response = append(response, toBookingResponse(b))
	}

	respondJSON(c, http.StatusOK, response)
}

// Get handles GET /api/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toBookingResponse(booking))
}

// Update handles PUT /api/bookings/:id
func (h *BookingHandler) Update(c *gin.Context) {
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "start_date must be YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "end_date must be YYYY-MM-DD"})
		return
	}

	booking, err := h.bookingService.UpdateBooking(c.Request.Context(), service.UpdateBookingRequest{
		BookingID: c.Param("id"),
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toBookingResponse(booking))
}

// Delete handles DELETE /api/bookings/:id
func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.bookingService.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// InitiatePayment handles POST /api/bookings/:id/initiate_payment
//
// The gateway's raw payload is passed through unchanged: 200 when the
// provider accepted the transaction, 400 when it rejected it.
func (h *BookingHandler) InitiatePayment(c *gin.Context) {
	result, err := h.paymentService.InitiatePayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if !result.Accepted {
		c.Data(http.StatusBadRequest, "application/json", result.Payload)
		return
	}

	c.Data(http.StatusOK, "application/json", result.Payload)
}
