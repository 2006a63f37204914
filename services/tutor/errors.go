package tutor

import "fmt"

// AuthError indicates bad signin credentials.
type AuthError struct{}

func (e AuthError) Error() string {
	return "invalid email or password"
}

// EmailTakenError indicates the signup email is already registered.
type EmailTakenError struct {
	Email string
}

func (e EmailTakenError) Error() string {
	return fmt.Sprintf("email %s is already registered", e.Email)
}

// NotFoundError indicates a missing tutor or catalog entry.
type NotFoundError struct {
	Message string
}

func (e NotFoundError) Error() string {
	return e.Message
}
