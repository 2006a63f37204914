package models

// BookingEvent names the lifecycle transitions exposed to observers.
const (
	EventBookingCreated   = "booking:created"
	EventBookingConfirmed = "booking:confirmed"
	EventBookingRejected  = "booking:rejected"
	EventBookingCancelled = "booking:cancelled"
	EventBookingFinished  = "booking:finished"
	EventBookingExpired   = "booking:expired"
)

// ReminderPayload is the task body queued when a confirmed booking should
// produce an upcoming-session reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	StudentID string `json:"studentId"`
	TutorID   string `json:"tutorId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
}
