package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/yourusername/nurture-api/internal/domain/entity"
	"github.com/yourusername/nurture-api/internal/domain/repository"
	apperrors "github.com/yourusername/nurture-api/internal/pkg/errors"
)

// BabyService manages baby profiles for the authenticated user.
type BabyService struct {
	babyRepo repository.BabyRepository
}

func NewBabyService(babyRepo repository.BabyRepository) *BabyService {
	return &BabyService{babyRepo: babyRepo}
}

// Create adds a baby profile owned by userID. The owner always comes
// from the verified request identity, never from the payload.
func (s *BabyService) Create(userID, name, gender string, birthDate *time.Time) (*entity.Baby, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: baby name is required", apperrors.ErrValidation)
	}

	baby := &entity.Baby{
		UserID:    userID,
		Name:      name,
		Gender:    strings.TrimSpace(gender),
		BirthDate: birthDate,
	}
	if err := s.babyRepo.Create(baby); err != nil {
		return nil, fmt.Errorf("failed to create baby profile: %w", err)
	}
	return baby, nil
}

// Get returns a baby profile if it belongs to userID. A foreign profile
// reads as not found so ids cannot be probed.
func (s *BabyService) Get(userID, babyID string) (*entity.Baby, error) {
	baby, err := s.babyRepo.GetByID(babyID)
	if err != nil {
		return nil, err
	}
	if baby.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return baby, nil
}

// List returns the user's baby profiles.
func (s *BabyService) List(userID string) ([]entity.Baby, error) {
	return s.babyRepo.ListByUser(userID)
}
