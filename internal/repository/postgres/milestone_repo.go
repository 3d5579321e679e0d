package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/nurture-api/internal/domain/entity"
)

// MilestoneRepo implements repository.MilestoneRepository.
type MilestoneRepo struct {
	db *gorm.DB
}

func NewMilestoneRepo(db *gorm.DB) *MilestoneRepo {
	return &MilestoneRepo{db: db}
}

func (r *MilestoneRepo) Create(milestone *entity.Milestone) error {
	return r.db.Create(milestone).Error
}

func (r *MilestoneRepo) ListByUser(userID string) ([]entity.Milestone, error) {
	var milestones []entity.Milestone
	err := r.db.Where("user_id = ?", userID).Order("achieved_at DESC").Find(&milestones).Error
	return milestones, err
}
