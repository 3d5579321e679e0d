package postgres

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/nurture-api/internal/domain/entity"
	apperrors "github.com/yourusername/nurture-api/internal/pkg/errors"
)

// UserRepo implements repository.UserRepository.
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepo creates the user repository.
func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a new account. The unique index on email is the final
// arbiter of the duplicate-signup race: a second concurrent insert loses
// here regardless of the service-level existence check, and the
// violation is reported as ErrConflict.
func (r *UserRepo) Create(user *entity.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: email already registered", apperrors.ErrConflict)
		}
		return err
	}
	return nil
}

// GetByID returns an account by id.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns an account by email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// MarkVerified flips the account to active and clears the code hash in a
// single update, keeping the verified-implies-no-hash invariant even
// under concurrent verification attempts.
func (r *UserRepo) MarkVerified(userID string) error {
	result := r.db.Model(&entity.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"is_verified":            true,
			"verification_code_hash": "",
			"updated_at":             time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateVerificationCodeHash stores a fresh code hash for a pending
// account. Refuses to touch verified accounts.
func (r *UserRepo) UpdateVerificationCodeHash(userID, codeHash string) error {
	result := r.db.Model(&entity.User{}).
		Where("id = ? AND is_verified = ?", userID, false).
		Updates(map[string]interface{}{
			"verification_code_hash": codeHash,
			"updated_at":             time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
