package availability

import (
	"context"
	"encoding/json"
	"time"

	tutorRepo "tutorhive/database/repository/tutor"
	"tutorhive/models"
	"tutorhive/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AvailabilityService maintains the tutor's slot grid.
type AvailabilityService interface {
	// SetAvailability merges the submitted day entries into the stored
	// grid: a non-empty slot list replaces that date wholesale, an empty
	// one deletes the date, and unmentioned dates stay untouched.
	SetAvailability(tutorID string, entries []models.AvailabilityEntry) ([]models.DayAvailability, error)
	GetAvailability(tutorID string) ([]models.DayAvailability, error)
}

const cacheTTL = 5 * time.Minute

// DefaultAvailabilityService is the concrete implementation backed by the
// tutor repository, with a read-through redis cache.
type DefaultAvailabilityService struct {
	Tutors tutorRepo.TutorRepository
	Cache  *redis.Client
}

func (s *DefaultAvailabilityService) cacheKey(tutorID string) string {
	return "availability:" + tutorID
}

// GetAvailability returns the tutor's grid, serving from cache when warm.
func (s *DefaultAvailabilityService) GetAvailability(tutorID string) ([]models.DayAvailability, error) {
	ctx := context.Background()

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, s.cacheKey(tutorID)).Result(); err == nil {
			var grid []models.DayAvailability
			if err := json.Unmarshal([]byte(cached), &grid); err == nil {
				return grid, nil
			}
		}
	}

	tutor, err := s.Tutors.GetByID(tutorID)
	if err != nil {
		return nil, err
	}
	if tutor == nil {
		return nil, &NotFoundError{TutorID: tutorID}
	}

	if s.Cache != nil {
		if data, err := json.Marshal(tutor.Availability); err == nil {
			if err := s.Cache.Set(ctx, s.cacheKey(tutorID), data, cacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache availability",
					zap.String("tutorId", tutorID), zap.Error(err))
			}
		}
	}
	return tutor.Availability, nil
}

func (s *DefaultAvailabilityService) invalidate(tutorID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(context.Background(), s.cacheKey(tutorID)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache",
			zap.String("tutorId", tutorID), zap.Error(err))
	}
}
