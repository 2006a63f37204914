package handlers

import (
	"errors"
	"net/http"

	"tutorhive/middleware"
	"tutorhive/models"
	"tutorhive/services/availability"
	"tutorhive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the tutor availability grid over HTTP.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

func respondAvailabilityError(c *gin.Context, err error) {
	var ve *availability.ValidationError
	var nf *availability.NotFoundError
	switch {
	case errors.As(err, &ve):
		utils.JSONError(c, http.StatusBadRequest, "Invalid availability payload", ve.Message)
	case errors.As(err, &nf):
		utils.JSONError(c, http.StatusNotFound, "Tutor not found", err.Error())
	default:
		utils.GetLogger().Error("availability operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

// SetAvailability handles PUT /api/tutors/:id/availability. Only the
// owning tutor may edit their grid.
func (h *AvailabilityHandler) SetAvailability(c *gin.Context) {
	userID, _ := middleware.Identity(c)
	tutorID := c.Param("id")
	if tutorID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "you may only edit your own availability"})
		return
	}

	var body struct {
		Entries []models.AvailabilityEntry `json:"entries"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	grid, err := h.Service.SetAvailability(tutorID, body.Entries)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": grid})
}

// GetAvailability handles GET /api/tutors/:id/availability.
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	grid, err := h.Service.GetAvailability(c.Param("id"))
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": grid})
}
