package repository

import "github.com/yourusername/nurture-api/internal/domain/entity"

// UserRepository persists accounts and their verification state. The
// store enforces email uniqueness; Create must surface a store-level
// uniqueness violation as apperrors.ErrConflict so concurrent signups
// for the same email cannot both succeed.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)

	// MarkVerified sets is_verified and clears the code hash in one
	// conditional update.
	MarkVerified(userID string) error

	// UpdateVerificationCodeHash replaces the pending code hash, used by
	// the resend flow.
	UpdateVerificationCodeHash(userID, codeHash string) error
}
