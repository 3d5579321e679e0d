package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/yourusername/nurture-api/internal/domain/entity"
	"github.com/yourusername/nurture-api/internal/domain/repository"
	apperrors "github.com/yourusername/nurture-api/internal/pkg/errors"
)

// MilestoneService manages milestone records for the authenticated user.
type MilestoneService struct {
	milestoneRepo repository.MilestoneRepository
	babyRepo      repository.BabyRepository
}

func NewMilestoneService(milestoneRepo repository.MilestoneRepository, babyRepo repository.BabyRepository) *MilestoneService {
	return &MilestoneService{milestoneRepo: milestoneRepo, babyRepo: babyRepo}
}

// Create records a milestone for one of the caller's babies.
func (s *MilestoneService) Create(userID, babyID, title, description string, achievedAt time.Time) (*entity.Milestone, error) {
	title = strings.TrimSpace(title)
	if title == "" || babyID == "" {
		return nil, fmt.Errorf("%w: title and baby_id are required", apperrors.ErrValidation)
	}
	if achievedAt.IsZero() {
		achievedAt = time.Now()
	}

	baby, err := s.babyRepo.GetByID(babyID)
	if err != nil {
		return nil, err
	}
	if baby.UserID != userID {
		return nil, apperrors.ErrNotFound
	}

	milestone := &entity.Milestone{
		UserID:      userID,
		BabyID:      babyID,
		Title:       title,
		Description: description,
		AchievedAt:  achievedAt,
	}
	if err := s.milestoneRepo.Create(milestone); err != nil {
		return nil, fmt.Errorf("failed to create milestone: %w", err)
	}
	return milestone, nil
}

// List returns the user's milestones, newest first.
func (s *MilestoneService) List(userID string) ([]entity.Milestone, error) {
	return s.milestoneRepo.ListByUser(userID)
}
