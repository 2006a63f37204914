package handlers

import (
	"errors"
	"net/http"

	"tutorhive/services/student"
	"tutorhive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StudentHandler exposes student account management.
type StudentHandler struct {
	Service student.StudentService
}

// NewStudentHandler constructs a StudentHandler.
func NewStudentHandler(svc student.StudentService) *StudentHandler {
	return &StudentHandler{Service: svc}
}

func respondStudentError(c *gin.Context, err error) {
	var nf student.NotFoundError
	if errors.As(err, &nf) {
		utils.JSONError(c, http.StatusNotFound, "Not found", nf.Error())
		return
	}
	utils.GetLogger().Error("student operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}

// GetStudent handles GET /api/students/:id.
func (h *StudentHandler) GetStudent(c *gin.Context) {
	if _, ok := requireSelf(c); !ok {
		return
	}
	st, err := h.Service.Get(c.Param("id"))
	if err != nil {
		respondStudentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"student": st})
}

// UpdateStudent handles PUT /api/students/:id.
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	studentID, ok := requireSelf(c)
	if !ok {
		return
	}

	var body struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	st, err := h.Service.Rename(studentID, body.Name)
	if err != nil {
		respondStudentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"student": st})
}

// DeleteStudent handles DELETE /api/students/:id.
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	studentID, ok := requireSelf(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(studentID); err != nil {
		respondStudentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "student deleted"})
}
