package student

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

// NotFoundError indicates a missing student.
type NotFoundError struct{}

func (e NotFoundError) Error() string {
	return "student not found"
}
