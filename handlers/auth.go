package handlers

import (
	"errors"
	"net/http"

	"tutorhive/services/student"
	"tutorhive/services/tutor"
	"tutorhive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes tutor and student registration/signin.
type AuthHandler struct {
	Tutors   tutor.TutorService
	Students student.StudentService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(tutors tutor.TutorService, students student.StudentService) *AuthHandler {
	return &AuthHandler{Tutors: tutors, Students: students}
}

type signinRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TutorSignup handles POST /api/auth/tutor/signup.
func (h *AuthHandler) TutorSignup(c *gin.Context) {
	var req tutor.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	t, token, err := h.Tutors.SignUp(req)
	if err != nil {
		var taken tutor.EmailTakenError
		if errors.As(err, &taken) {
			utils.JSONError(c, http.StatusConflict, "Email already registered", taken.Error())
			return
		}
		utils.GetLogger().Error("tutor signup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "tutor": t})
}

// TutorSignin handles POST /api/auth/tutor/signin.
func (h *AuthHandler) TutorSignin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	t, token, err := h.Tutors.SignIn(req.Email, req.Password)
	if err != nil {
		var auth tutor.AuthError
		if errors.As(err, &auth) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": auth.Error()})
			return
		}
		utils.GetLogger().Error("tutor signin failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "tutor": t})
}

// StudentSignup handles POST /api/auth/student/signup.
func (h *AuthHandler) StudentSignup(c *gin.Context) {
	var req student.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	st, token, err := h.Students.SignUp(req)
	if err != nil {
		var taken student.EmailTakenError
		if errors.As(err, &taken) {
			utils.JSONError(c, http.StatusConflict, "Email already registered", taken.Error())
			return
		}
		utils.GetLogger().Error("student signup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "student": st})
}

// StudentSignin handles POST /api/auth/student/signin.
func (h *AuthHandler) StudentSignin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	st, token, err := h.Students.SignIn(req.Email, req.Password)
	if err != nil {
		var auth student.AuthError
		if errors.As(err, &auth) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": auth.Error()})
			return
		}
		utils.GetLogger().Error("student signin failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "student": st})
}
