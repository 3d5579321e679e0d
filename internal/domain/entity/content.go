package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyRead is a dated reading entry shared with every user.
type DailyRead struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Body        string    `gorm:"type:text;not null" json:"body"`
	Author      string    `gorm:"size:255;not null;default:''" json:"author"`
	PublishedOn time.Time `gorm:"type:date;not null;index" json:"published_on"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DailyRead) TableName() string {
	return "daily_reads"
}

func (d *DailyRead) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// Scripture is a themed scripture entry shared with every user.
type Scripture struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	Reference string `gorm:"size:255;not null" json:"reference"`
	Text      string `gorm:"type:text;not null" json:"text"`
	Theme     string `gorm:"size:100;not null;default:''" json:"theme"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Scripture) TableName() string {
	return "scriptures"
}

func (s *Scripture) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
