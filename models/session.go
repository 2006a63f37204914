package models

// Session is one teachable subject in a tutor's catalog. Bookings reference
// it by ID; the booking engine treats the content opaquely.
type Session struct {
	ID          string  `bson:"id" json:"id"`
	Subject     string  `bson:"subject" json:"subject"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	HourlyRate  float64 `bson:"hourlyRate,omitempty" json:"hourlyRate,omitempty"`
}

// SessionInput is the payload for adding a catalog entry.
type SessionInput struct {
	Subject     string  `json:"subject" binding:"required"`
	Description string  `json:"description"`
	HourlyRate  float64 `json:"hourlyRate"`
}
