package service

import "errors"

// Auth flow specific errors used by handlers for stable error_type mapping.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	// Handlers must present the two identically to avoid a
	// user-enumeration oracle.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrEmailNotVerified is returned on login against a pending account.
	// Deliberately distinguishable: it reveals verification state, not
	// password correctness.
	ErrEmailNotVerified = errors.New("email_not_verified")

	// ErrInvalidVerificationCode is returned when the supplied code does
	// not match the stored hash, including re-verification of an already
	// active account whose hash was cleared.
	ErrInvalidVerificationCode = errors.New("invalid_verification_code")

	// ErrEmailDeliveryFailed signals that a state mutation succeeded but
	// the notification did not. The account is NOT rolled back; the
	// caller needs the resend path.
	ErrEmailDeliveryFailed = errors.New("email_delivery_failed")
)
