package models

import "time"

// Booking statuses. A booking starts out pending; cancellation deletes the
// record outright instead of recording a status.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingRejected  = "rejected"
	BookingFinished  = "finished"
	BookingExpired   = "expired"
)

// Preferred meeting locations.
const (
	LocationPublicPlace = "public-place"
	LocationTutorPlace  = "tutor-place"
	LocationOnline      = "online"
)

// Booking represents one reservation spanning one or more contiguous slots
// on a tutor's grid.
type Booking struct {
	ID                string     `bson:"id" json:"id"`
	TutorID           string     `bson:"tutorId" json:"tutorId"`
	StudentID         string     `bson:"studentId" json:"studentId"`
	SessionID         string     `bson:"sessionId" json:"sessionId"`
	Date              string     `bson:"date" json:"date"` // "2006-01-02"
	StartTime         string     `bson:"startTime" json:"startTime"`
	EndTime           string     `bson:"endTime" json:"endTime"`
	PreferredLocation string     `bson:"preferredLocation" json:"preferredLocation"`
	Note              string     `bson:"note,omitempty" json:"note,omitempty"`
	Status            string     `bson:"status" json:"status"`
	RejectNote        string     `bson:"rejectNote,omitempty" json:"rejectNote,omitempty"`
	CreatedAt         time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time  `bson:"updatedAt" json:"updatedAt"`
	FinishedAt        *time.Time `bson:"finishedAt,omitempty" json:"finishedAt,omitempty"`
}

// EndsBefore reports whether the booked range is entirely in the past
// relative to now. This drives both the sweep and the active/inactive
// listing partition.
func (b Booking) EndsBefore(now time.Time) bool {
	end, err := CombineDateTime(b.Date, b.EndTime)
	if err != nil {
		return false
	}
	return now.After(end)
}

// CreateBookingRequest is the payload for booking creation.
type CreateBookingRequest struct {
	TutorID           string `json:"tutorId" binding:"required"`
	SessionID         string `json:"sessionId" binding:"required"`
	Date              string `json:"date" binding:"required"`
	StartTime         string `json:"startTime" binding:"required"`
	EndTime           string `json:"endTime" binding:"required"`
	PreferredLocation string `json:"preferredLocation" binding:"required,oneof=public-place tutor-place online"`
	Note              string `json:"note"`
}
