package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/nurture-api/internal/domain/entity"
)

// ScheduleRepo implements repository.ScheduleRepository.
type ScheduleRepo struct {
	db *gorm.DB
}

func NewScheduleRepo(db *gorm.DB) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

func (r *ScheduleRepo) Create(schedule *entity.Schedule) error {
	return r.db.Create(schedule).Error
}

func (r *ScheduleRepo) ListByUser(userID string) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	err := r.db.Where("user_id = ?", userID).Order("starts_at").Find(&schedules).Error
	return schedules, err
}
