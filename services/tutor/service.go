package tutor

import (
	"time"

	tutorRepo "tutorhive/database/repository/tutor"
	"tutorhive/models"
	"tutorhive/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// DefaultTutorService is the concrete TutorService implementation.
type DefaultTutorService struct {
	Repo tutorRepo.TutorRepository
}

func (s *DefaultTutorService) SignUp(req SignupRequest) (*models.Tutor, string, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", EmailTakenError{Email: req.Email}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	t := &models.Tutor{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Bio:          req.Bio,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(t); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(t.ID, models.RoleTutor, tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return t, token, nil
}

func (s *DefaultTutorService) SignIn(email, password string) (*models.Tutor, string, error) {
	t, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if t == nil {
		return nil, "", AuthError{}
	}
	if bcrypt.CompareHashAndPassword([]byte(t.PasswordHash), []byte(password)) != nil {
		return nil, "", AuthError{}
	}

	token, err := utils.GenerateToken(t.ID, models.RoleTutor, tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return t, token, nil
}

func (s *DefaultTutorService) Get(id string) (*models.Tutor, error) {
	t, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, NotFoundError{Message: "tutor not found"}
	}
	return t, nil
}

func (s *DefaultTutorService) UpdateProfile(id string, upd models.TutorUpdate) (*models.Tutor, error) {
	if err := s.Repo.UpdateProfile(id, upd); err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *DefaultTutorService) Delete(id string) error {
	return s.Repo.Delete(id)
}

func (s *DefaultTutorService) AddSession(tutorID string, in models.SessionInput) (*models.Session, error) {
	session := models.Session{
		ID:          uuid.New().String(),
		Subject:     in.Subject,
		Description: in.Description,
		HourlyRate:  in.HourlyRate,
	}
	if err := s.Repo.AddSession(tutorID, session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *DefaultTutorService) ListSessions(tutorID string) ([]models.Session, error) {
	t, err := s.Get(tutorID)
	if err != nil {
		return nil, err
	}
	return t.Sessions, nil
}

func (s *DefaultTutorService) RemoveSession(tutorID, sessionID string) error {
	t, err := s.Get(tutorID)
	if err != nil {
		return err
	}
	for _, sess := range t.Sessions {
		if sess.ID == sessionID {
			return s.Repo.RemoveSession(tutorID, sessionID)
		}
	}
	return NotFoundError{Message: "session not found"}
}
