package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense is a spending record. Amount is stored in minor currency units.
type Expense struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	AmountCents int64     `gorm:"not null" json:"amount_cents"`
	Category    string    `gorm:"size:50;not null;default:''" json:"category"`
	IncurredAt  time.Time `gorm:"not null" json:"incurred_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Expense) TableName() string {
	return "expenses"
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
