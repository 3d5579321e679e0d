package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered parent account. A user is either pending
// (unverified, holds a verification code hash, cannot log in) or active
// (verified, code hash cleared). There is no third state and no way back
// from active to pending.
type User struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password string `gorm:"size:100;not null" json:"-"`

	IsVerified           bool   `gorm:"not null;default:false" json:"is_verified"`
	VerificationCodeHash string `gorm:"size:100;not null;default:''" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns an opaque id.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// IsPending reports whether the account still awaits email verification.
func (u *User) IsPending() bool {
	return !u.IsVerified
}

// MarkVerified transitions the account from pending to active. Clearing
// the code hash keeps the invariant that a verified account never holds
// one, which also makes the one-time code unusable afterwards.
func (u *User) MarkVerified() {
	u.IsVerified = true
	u.VerificationCodeHash = ""
}
