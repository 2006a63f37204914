package handlers

import (
	"errors"
	"net/http"

	"tutorhive/middleware"
	"tutorhive/models"
	"tutorhive/services/tutor"
	"tutorhive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TutorHandler exposes tutor profiles and session catalogs.
type TutorHandler struct {
	Service tutor.TutorService
}

// NewTutorHandler constructs a TutorHandler.
func NewTutorHandler(svc tutor.TutorService) *TutorHandler {
	return &TutorHandler{Service: svc}
}

func respondTutorError(c *gin.Context, err error) {
	var nf tutor.NotFoundError
	if errors.As(err, &nf) {
		utils.JSONError(c, http.StatusNotFound, "Not found", nf.Error())
		return
	}
	utils.GetLogger().Error("tutor operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}

// requireSelf aborts unless the authenticated identity matches the :id param.
func requireSelf(c *gin.Context) (string, bool) {
	userID, _ := middleware.Identity(c)
	if c.Param("id") != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "you may only manage your own account"})
		return "", false
	}
	return userID, true
}

// GetTutor handles GET /api/tutors/:id.
func (h *TutorHandler) GetTutor(c *gin.Context) {
	t, err := h.Service.Get(c.Param("id"))
	if err != nil {
		respondTutorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tutor": t})
}

// UpdateTutor handles PUT /api/tutors/:id.
func (h *TutorHandler) UpdateTutor(c *gin.Context) {
	tutorID, ok := requireSelf(c)
	if !ok {
		return
	}

	var upd models.TutorUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	t, err := h.Service.UpdateProfile(tutorID, upd)
	if err != nil {
		respondTutorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tutor": t})
}

// DeleteTutor handles DELETE /api/tutors/:id.
func (h *TutorHandler) DeleteTutor(c *gin.Context) {
	tutorID, ok := requireSelf(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(tutorID); err != nil {
		respondTutorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tutor deleted"})
}

// AddSession handles POST /api/tutors/:id/sessions.
func (h *TutorHandler) AddSession(c *gin.Context) {
	tutorID, ok := requireSelf(c)
	if !ok {
		return
	}

	var in models.SessionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	session, err := h.Service.AddSession(tutorID, in)
	if err != nil {
		respondTutorError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// ListSessions handles GET /api/tutors/:id/sessions.
func (h *TutorHandler) ListSessions(c *gin.Context) {
	sessions, err := h.Service.ListSessions(c.Param("id"))
	if err != nil {
		respondTutorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// RemoveSession handles DELETE /api/tutors/:id/sessions/:sessionId.
func (h *TutorHandler) RemoveSession(c *gin.Context) {
	tutorID, ok := requireSelf(c)
	if !ok {
		return
	}
	if err := h.Service.RemoveSession(tutorID, c.Param("sessionId")); err != nil {
		respondTutorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session removed"})
}
