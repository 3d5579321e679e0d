package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/nurture-api/internal/domain/entity"
	apperrors "github.com/yourusername/nurture-api/internal/pkg/errors"
)

// BabyRepo implements repository.BabyRepository.
type BabyRepo struct {
	db *gorm.DB
}

func NewBabyRepo(db *gorm.DB) *BabyRepo {
	return &BabyRepo{db: db}
}

func (r *BabyRepo) Create(baby *entity.Baby) error {
	return r.db.Create(baby).Error
}

func (r *BabyRepo) GetByID(id string) (*entity.Baby, error) {
	var baby entity.Baby
	err := r.db.Where("id = ?", id).First(&baby).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &baby, nil
}

func (r *BabyRepo) ListByUser(userID string) ([]entity.Baby, error) {
	var babies []entity.Baby
	err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&babies).Error
	return babies, err
}
