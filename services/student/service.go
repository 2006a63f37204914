package student

import (
	"time"

	studentRepo "tutorhive/database/repository/student"
	"tutorhive/models"
	"tutorhive/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// SignupRequest is the student registration payload.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// StudentService manages student accounts.
type StudentService interface {
	SignUp(req SignupRequest) (*models.Student, string, error)
	SignIn(email, password string) (*models.Student, string, error)
	Get(id string) (*models.Student, error)
	Rename(id, name string) (*models.Student, error)
	Delete(id string) error
}

// DefaultStudentService is the concrete StudentService implementation.
type DefaultStudentService struct {
	Repo studentRepo.StudentRepository
}

func (s *DefaultStudentService) SignUp(req SignupRequest) (*models.Student, string, error) {
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
	st := &models.Student{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(st); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(st.ID, models.RoleStudent, tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return st, token, nil
}

func (s *DefaultStudentService) SignIn(email, password string) (*models.Student, string, error) {
	st, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if st == nil {
		return nil, "", AuthError{}
	}
	if bcrypt.CompareHashAndPassword([]byte(st.PasswordHash), []byte(password)) != nil {
		return nil, "", AuthError{}
	}

	token, err := utils.GenerateToken(st.ID, models.RoleStudent, tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return st, token, nil
}

func (s *DefaultStudentService) Get(id string) (*models.Student, error) {
	st, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, NotFoundError{}
	}
	return st, nil
}

func (s *DefaultStudentService) Rename(id, name string) (*models.Student, error) {
	if err := s.Repo.UpdateName(id, name); err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *DefaultStudentService) Delete(id string) error {
	return s.Repo.Delete(id)
}
