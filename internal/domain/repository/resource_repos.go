package repository

import (
	"time"

	"github.com/yourusername/nurture-api/internal/domain/entity"
)

// The resource repositories are plain parameterized-query wrappers; every
// list is scoped to the owning user except the shared content tables.

type BabyRepository interface {
	Create(baby *entity.Baby) error
	GetByID(id string) (*entity.Baby, error)
	ListByUser(userID string) ([]entity.Baby, error)
}

type ScheduleRepository interface {
	Create(schedule *entity.Schedule) error
	ListByUser(userID string) ([]entity.Schedule, error)
}

type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	ListByUser(userID string) ([]entity.Expense, error)
}

type MilestoneRepository interface {
	Create(milestone *entity.Milestone) error
	ListByUser(userID string) ([]entity.Milestone, error)
}

type DailyReadRepository interface {
	Create(read *entity.DailyRead) error
	List(limit, offset int) ([]entity.DailyRead, error)
	GetByDate(day time.Time) (*entity.DailyRead, error)
}

type ScriptureRepository interface {
	Create(scripture *entity.Scripture) error
	List(limit, offset int) ([]entity.Scripture, error)
}

type ContactMessageRepository interface {
	Create(message *entity.ContactMessage) error
}
