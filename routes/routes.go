package routes

import (
	"net/http"

	"tutorhive/handlers"
	"tutorhive/middleware"
	"tutorhive/models"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the route table needs.
type HandlerBundle struct {
	Auth         *handlers.AuthHandler
	Tutors       *handlers.TutorHandler
	Students     *handlers.StudentHandler
	Availability *handlers.AvailabilityHandler
	Bookings     *handlers.BookingHandler
}

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, h *HandlerBundle) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/tutor/signup", h.Auth.TutorSignup)
		auth.POST("/tutor/signin", h.Auth.TutorSignin)
		auth.POST("/student/signup", h.Auth.StudentSignup)
		auth.POST("/student/signin", h.Auth.StudentSignin)
	}

	tutors := r.Group("/api/tutors")
	{
		tutors.GET("/:id", h.Tutors.GetTutor)
		tutors.GET("/:id/sessions", h.Tutors.ListSessions)
		tutors.GET("/:id/availability", h.Availability.GetAvailability)

		owned := tutors.Group("", middleware.AuthMiddleware(), middleware.RequireRole(models.RoleTutor))
		{
			owned.PUT("/:id", h.Tutors.UpdateTutor)
			owned.DELETE("/:id", h.Tutors.DeleteTutor)
			owned.POST("/:id/sessions", h.Tutors.AddSession)
			owned.DELETE("/:id/sessions/:sessionId", h.Tutors.RemoveSession)
			owned.PUT("/:id/availability", h.Availability.SetAvailability)
		}
	}

	students := r.Group("/api/students", middleware.AuthMiddleware(), middleware.RequireRole(models.RoleStudent))
	{
		students.GET("/:id", h.Students.GetStudent)
		students.PUT("/:id", h.Students.UpdateStudent)
		students.DELETE("/:id", h.Students.DeleteStudent)
	}

	bookings := r.Group("/api/bookings", middleware.AuthMiddleware())
	{
		bookings.GET("", h.Bookings.ListMyBookings)
		bookings.POST("", middleware.RequireRole(models.RoleStudent), h.Bookings.CreateBooking)
		bookings.DELETE("/:id", middleware.RequireRole(models.RoleStudent), h.Bookings.CancelBooking)
		bookings.POST("/:id/confirm", middleware.RequireRole(models.RoleTutor), h.Bookings.ConfirmBooking)
		bookings.POST("/:id/reject", middleware.RequireRole(models.RoleTutor), h.Bookings.RejectBooking)
	}
}
