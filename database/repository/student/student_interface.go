package studentRepo

import "tutorhive/models"

// StudentRepository defines persistence operations for student accounts.
type StudentRepository interface {
	Create(s *models.Student) error
	// GetByID returns (nil, nil) when no student matches.
	GetByID(id string) (*models.Student, error)
	GetByEmail(email string) (*models.Student, error)
	UpdateName(id, name string) error
	Delete(id string) error
}
