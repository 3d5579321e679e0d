package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Baby is a child profile owned by one user.
type Baby struct {
	ID        string     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	Gender    string     `gorm:"size:20;not null;default:''" json:"gender"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Baby) TableName() string {
	return "babies"
}

func (b *Baby) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
