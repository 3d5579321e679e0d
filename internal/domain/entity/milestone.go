package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Milestone records a developmental moment (first steps, first word) for a baby.
type Milestone struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	BabyID      string    `gorm:"type:uuid;not null;index" json:"baby_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null;default:''" json:"description"`
	AchievedAt  time.Time `gorm:"not null" json:"achieved_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Milestone) TableName() string {
	return "milestones"
}

func (m *Milestone) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
