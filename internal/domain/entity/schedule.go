package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Schedule is a planned care activity (feeding, nap, appointment) for a baby.
type Schedule struct {
	ID       string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   string    `gorm:"type:uuid;not null;index" json:"user_id"`
	BabyID   string    `gorm:"type:uuid;not null;index" json:"baby_id"`
	Title    string    `gorm:"size:255;not null" json:"title"`
	Activity string    `gorm:"size:50;not null;default:''" json:"activity"`
	StartsAt time.Time `gorm:"not null" json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
	Notes    string    `gorm:"type:text;not null;default:''" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Schedule) TableName() string {
	return "schedules"
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
