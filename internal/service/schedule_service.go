package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/yourusername/nurture-api/internal/domain/entity"
	"github.com/yourusername/nurture-api/internal/domain/repository"
	apperrors "github.com/yourusername/nurture-api/internal/pkg/errors"
)

// ScheduleService manages care schedules for the authenticated user.
type ScheduleService struct {
	scheduleRepo repository.ScheduleRepository
	babyRepo     repository.BabyRepository
}

func NewScheduleService(scheduleRepo repository.ScheduleRepository, babyRepo repository.BabyRepository) *ScheduleService {
	return &ScheduleService{scheduleRepo: scheduleRepo, babyRepo: babyRepo}
}

// ScheduleInput contains the schedule form fields.
type ScheduleInput struct {
	BabyID   string
	Title    string
	Activity string
	StartsAt time.Time
	EndsAt   time.Time
	Notes    string
}

// Create adds a schedule entry. The referenced baby must belong to the
// caller.
func (s *ScheduleService) Create(userID string, input ScheduleInput) (*entity.Schedule, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" || input.BabyID == "" {
		return nil, fmt.Errorf("%w: title and baby_id are required", apperrors.ErrValidation)
	}
	if input.StartsAt.IsZero() {
		return nil, fmt.Errorf("%w: starts_at is required", apperrors.ErrValidation)
	}

	baby, err := s.babyRepo.GetByID(input.BabyID)
	if err != nil {
		return nil, err
	}
	if baby.UserID != userID {
		return nil, apperrors.ErrNotFound
	}

	schedule := &entity.Schedule{
		UserID:   userID,
		BabyID:   input.BabyID,
		Title:    input.Title,
		Activity: strings.TrimSpace(input.Activity),
		StartsAt: input.StartsAt,
		EndsAt:   input.EndsAt,
		Notes:    input.Notes,
	}
	if err := s.scheduleRepo.Create(schedule); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	return schedule, nil
}

// List returns the user's schedule entries.
func (s *ScheduleService) List(userID string) ([]entity.Schedule, error) {
	return s.scheduleRepo.ListByUser(userID)
}
