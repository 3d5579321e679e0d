package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/nurture-api/internal/domain/entity"
	apperrors "github.com/yourusername/nurture-api/internal/pkg/errors"
)

// DailyReadRepo implements repository.DailyReadRepository.
type DailyReadRepo struct {
	db *gorm.DB
}

func NewDailyReadRepo(db *gorm.DB) *DailyReadRepo {
	return &DailyReadRepo{db: db}
}

func (r *DailyReadRepo) Create(read *entity.DailyRead) error {
	return r.db.Create(read).Error
}

func (r *DailyReadRepo) List(limit, offset int) ([]entity.DailyRead, error) {
	var reads []entity.DailyRead
	err := r.db.Order("published_on DESC").Limit(limit).Offset(offset).Find(&reads).Error
	return reads, err
}

// GetByDate returns the entry published on the given calendar day.
func (r *DailyReadRepo) GetByDate(day time.Time) (*entity.DailyRead, error) {
	var read entity.DailyRead
	err := r.db.Where("published_on = ?", day.Format("2006-01-02")).First(&read).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &read, nil
}

// ScriptureRepo implements repository.ScriptureRepository.
type ScriptureRepo struct {
	db *gorm.DB
}

func NewScriptureRepo(db *gorm.DB) *ScriptureRepo {
	return &ScriptureRepo{db: db}
}

func (r *ScriptureRepo) Create(scripture *entity.Scripture) error {
	return r.db.Create(scripture).Error
}

func (r *ScriptureRepo) List(limit, offset int) ([]entity.Scripture, error) {
	var scriptures []entity.Scripture
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&scriptures).Error
	return scriptures, err
}

// ContactMessageRepo implements repository.ContactMessageRepository.
type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db: db}
}

func (r *ContactMessageRepo) Create(message *entity.ContactMessage) error {
	return r.db.Create(message).Error
}
