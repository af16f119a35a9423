package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travel/internal/domain"
	"travel/internal/service"
)

// ListingHandler handles HTTP requests for travel listings.
type ListingHandler struct {
	listingService *service.ListingService
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(listingService *service.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// ListingRequest is the HTTP request body for creating or updating a listing.
type ListingRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"price_per_night"`
}

// ListingResponse is the HTTP response for listing data.
type ListingResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	PricePerNight float64   `json:"price_per_night"`
	CreatedAt     time.Time `json:"created_at"`
}

func toListingResponse(l *domain.Listing) ListingResponse {
	return ListingResponse{
		ID:            l.ID,
		Title:         l.Title,
		Description:   l.Description,
		Location:      l.Location,
		PricePerNight: l.PricePerNight,
		CreatedAt:     l.CreatedAt,
	}
}

// Create handles POST /api/travel-listings
func (h *ListingHandler) Create(c *gin.Context) {
	var req ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	listing, err := h.listingService.CreateListing(c.Request.Context(), service.CreateListingRequest{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toListingResponse(listing))
}

// GetAll handles GET /api/travel-listings
func (h *ListingHandler) GetAll(c *gin.Context) {
	listings, err := h.listingService.GetAllListings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		response = append(response, toListingResponse(l))
	}

	respondJSON(c, http.StatusOK, response)
}

// Get handles GET /api/travel-listings/:id
func (h *ListingHandler) Get(c *gin.Context) {
	listing, err := h.listingService.GetListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toListingResponse(listing))
}

// Update handles PUT /api/travel-listings/:id
func (h *ListingHandler) Update(c *gin.Context) {
	var req ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	listing, err := h.listingService.UpdateListing(c.Request.Context(), service.UpdateListingRequest{
		ListingID:     c.Param("id"),
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toListingResponse(listing))
}

// Delete handles DELETE /api/travel-listings/:id
func (h *ListingHandler) Delete(c *gin.Context) {
	if err := h.listingService.DeleteListing(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ReviewRequest is the HTTP request body for reviewing a listing.
type ReviewRequest struct {
	UserID  string `json:"user_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewResponse is the HTTP response for review data.
type ReviewResponse struct {
	ID        string    `json:"id"`
	ListingID string    `json:"listing_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateReview handles POST /api/travel-listings/:id/reviews
func (h *ListingHandler) CreateReview(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	review, err := h.listingService.CreateReview(c.Request.Context(), service.CreateReviewRequest{
		ListingID: c.Param("id"),
		UserID:    req.UserID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, ReviewResponse{
		ID:        review.ID,
		ListingID: review.ListingID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	})
}

// GetReviews handles GET /api/travel-listings/:id/reviews
func (h *ListingHandler) GetReviews(c *gin.Context) {
	reviews, err := h.listingService.GetListingReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		response = append(response, ReviewResponse{
			ID:        r.ID,
			ListingID: r.ListingID,
			UserID:    r.UserID,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		})
	}

	respondJSON(c, http.StatusOK, response)
}
