package models

import "time"

// Student is the booking-side account.
type Student struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Roles carried in auth tokens and checked per operation.
const (
	RoleTutor   = "tutor"
	RoleStudent = "student"
)
