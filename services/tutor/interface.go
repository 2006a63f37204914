package tutor

import "tutorhive/models"

// SignupRequest is the tutor registration payload.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Bio      string `json:"bio"`
}

// TutorService manages tutor accounts and their session catalogs.
type TutorService interface {
	SignUp(req SignupRequest) (*models.Tutor, string, error)
	SignIn(email, password string) (*models.Tutor, string, error)
	Get(id string) (*models.Tutor, error)
	UpdateProfile(id string, upd models.TutorUpdate) (*models.Tutor, error)
	Delete(id string) error

	AddSession(tutorID string, in models.SessionInput) (*models.Session, error)
	ListSessions(tutorID string) ([]models.Session, error)
	RemoveSession(tutorID, sessionID string) error
}
