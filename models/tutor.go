package models

import "time"

// Tutor owns a session catalog and the availability grid students book
// against. AvailabilityVersion is bumped on every grid write and used as
// an optimistic-concurrency token by the repository.
type Tutor struct {
	ID                  string            `bson:"id" json:"id"`
	Name                string            `bson:"name" json:"name"`
	Email               string            `bson:"email" json:"email"`
	PasswordHash        string            `bson:"passwordHash" json:"-"`
	Bio                 string            `bson:"bio,omitempty" json:"bio,omitempty"`
	Sessions            []Session         `bson:"sessions,omitempty" json:"sessions,omitempty"`
	Availability        []DayAvailability `bson:"availability,omitempty" json:"availability,omitempty"`
	AvailabilityVersion int64             `bson:"availabilityVersion" json:"-"`
	CreatedAt           time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// TutorUpdate carries the mutable profile fields.
type TutorUpdate struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}
