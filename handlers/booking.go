package handlers

import (
	"net/http"

	"tutorhive/middleware"
	"tutorhive/models"
	"tutorhive/services/booking"
	"tutorhive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// respondBookingError maps the service error taxonomy onto HTTP statuses.
// The distinct messages let the client decide between re-selection
// (availability/race) and correction (bad input).
func respondBookingError(c *gin.Context, err error) {
	switch booking.CodeOf(err) {
	case booking.CodeValidation:
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
	case booking.CodeNotFound:
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case booking.CodeForbidden:
		utils.JSONError(c, http.StatusForbidden, "Forbidden", err.Error())
	default:
		utils.GetLogger().Error("booking operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	studentID, _ := middleware.Identity(c)

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	b, err := h.Service.Create(studentID, req)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": b})
}

// CancelBooking handles DELETE /api/bookings/:id.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	studentID, _ := middleware.Identity(c)

	if err := h.Service.Cancel(studentID, c.Param("id")); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

// ConfirmBooking handles POST /api/bookings/:id/confirm.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	tutorID, _ := middleware.Identity(c)

	b, err := h.Service.Confirm(tutorID, c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// RejectBooking handles POST /api/bookings/:id/reject.
func (h *BookingHandler) RejectBooking(c *gin.Context) {
	tutorID, _ := middleware.Identity(c)

	var body struct {
		RejectNote string `json:"rejectNote"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
			return
		}
	}

	b, err := h.Service.Reject(tutorID, c.Param("id"), body.RejectNote)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// ListMyBookings handles GET /api/bookings?status=active|inactive.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	userID, role := middleware.Identity(c)

	bookings, err := h.Service.ListMine(userID, role, c.Query("status"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
