package availability

import "fmt"

// ValidationError marks a user-correctable problem with an availability edit.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validationError: %s", e.Message)
}

// NotFoundError marks a missing tutor.
type NotFoundError struct {
	TutorID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("tutor %s not found", e.TutorID)
}
