package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"regexp"
	"strings"

	"github.com/yourusername/nurture-api/internal/domain/entity"
	"github.com/yourusername/nurture-api/internal/domain/repository"
	apperrors "github.com/yourusername/nurture-api/internal/pkg/errors"
	"github.com/yourusername/nurture-api/pkg/auth"
	"github.com/yourusername/nurture-api/pkg/hash"
)

var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService orchestrates the account lifecycle: signup, email-code
// verification and login. Stateless between requests; all mutable state
// lives in the user store.
type AuthService struct {
	userRepo     repository.UserRepository
	emailService EmailService
	jwtService   *auth.JWTService
}

// NewAuthService creates the auth service and returns an error when a
// dependency is missing.
func NewAuthService(
	userRepo repository.UserRepository,
	emailService EmailService,
	jwtService *auth.JWTService,
) (*AuthService, error) {
	if userRepo == nil {
		return nil, fmt.Errorf("UserRepository is required for AuthService")
	}
	if emailService == nil {
		return nil, fmt.Errorf("EmailService is required for AuthService")
	}
	if jwtService == nil {
		return nil, fmt.Errorf("JWTService is required for AuthService")
	}
	return &AuthService{
		userRepo:     userRepo,
		emailService: emailService,
		jwtService:   jwtService,
	}, nil
}

// SignUpInput contains the signup form fields.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// AuthResult is returned by operations that log the caller in.
type AuthResult struct {
	User  *entity.User
	Token string
}

// SignUp registers a pending account and emails the one-time code. When
// delivery fails the account is kept — the created user is returned
// alongside ErrEmailDeliveryFailed so the caller can drive the resend
// path instead of a rollback.
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (*entity.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)

	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", apperrors.ErrValidation)
	}
	if !emailShape.MatchString(input.Email) {
		return nil, fmt.Errorf("%w: invalid email address", apperrors.ErrValidation)
	}
	if len(input.Name) > 255 || len(input.Email) > 255 {
		return nil, fmt.Errorf("%w: name and email must be at most 255 characters", apperrors.ErrValidation)
	}
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", apperrors.ErrValidation)
	}

	_, err := s.userRepo.GetByEmail(input.Email)
	if err == nil {
		return nil, fmt.Errorf("%w: user with this email already exists", apperrors.ErrConflict)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}

	passwordHash, err := hash.Secret(input.Password)
	if err != nil {
		return nil, err
	}

	code, err := generateVerificationCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification code: %w", err)
	}
	codeHash, err := hash.Secret(code)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:                 input.Name,
		Email:                input.Email,
		Password:             passwordHash,
		IsVerified:           false,
		VerificationCodeHash: codeHash,
	}

	// The unique index on email decides the race between two concurrent
	// signups; a store-level violation surfaces as ErrConflict here.
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.emailService.SendVerificationCode(ctx, user.Email, user.Name, code); err != nil {
		log.Printf("[AuthService] Verification email delivery failed for user ID=%s: %v", user.ID, err)
		return user, fmt.Errorf("%w: account created but the verification email could not be sent", ErrEmailDeliveryFailed)
	}

	log.Printf("[AuthService] User ID=%s (%s) signed up, verification pending", user.ID, user.Email)
	return user, nil
}

// ResendCode regenerates and re-sends the verification code for a
// pending account. For an already active account it is a silent success
// so the endpoint leaks nothing about verification state.
func (s *AuthService) ResendCode(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", apperrors.ErrValidation)
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user.IsVerified {
		return nil
	}

	code, err := generateVerificationCode()
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}
	codeHash, err := hash.Secret(code)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdateVerificationCodeHash(user.ID, codeHash); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	if err := s.emailService.SendVerificationCode(ctx, user.Email, user.Name, code); err != nil {
		log.Printf("[AuthService] Resend delivery failed for user ID=%s: %v", user.ID, err)
		return fmt.Errorf("%w: verification email could not be sent", ErrEmailDeliveryFailed)
	}
	return nil
}

// VerifyEmail checks the one-time code and activates the account. The
// code comparison runs against whatever hash is stored, so an already
// verified account (cleared hash) fails with ErrInvalidVerificationCode
// rather than succeeding twice. On success the user is logged in
// immediately; the confirmation email is best-effort.
func (s *AuthService) VerifyEmail(ctx context.Context, email, code string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return nil, fmt.Errorf("%w: email and verification code are required", apperrors.ErrValidation)
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}

	if !hash.Verify(code, user.VerificationCodeHash) {
		return nil, ErrInvalidVerificationCode
	}

	if err := s.userRepo.MarkVerified(user.ID); err != nil {
		return nil, fmt.Errorf("failed to mark user verified: %w", err)
	}
	user.MarkVerified()

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	if err := s.emailService.SendVerificationSuccess(ctx, user.Email, user.Name); err != nil {
		// Non-fatal: the account is active either way.
		log.Printf("[AuthService] Confirmation email failed for user ID=%s: %v", user.ID, err)
	}

	log.Printf("[AuthService] User ID=%s (%s) verified", user.ID, user.Email)
	return &AuthResult{User: user, Token: token}, nil
}

// Login authenticates an active account and issues a session token.
// Unknown email and wrong password collapse into the same
// ErrInvalidCredentials; only the pending state is distinguishable.
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", apperrors.ErrValidation)
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.IsPending() {
		return nil, ErrEmailNotVerified
	}

	if !hash.Verify(password, user.Password) {
		log.Printf("[AuthService] Failed login attempt for %s", email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	log.Printf("[AuthService] User ID=%s (%s) logged in", user.ID, user.Email)
	return &AuthResult{User: user, Token: token}, nil
}

// GetUserByID returns an account by id.
func (s *AuthService) GetUserByID(userID string) (*entity.User, error) {
	return s.userRepo.GetByID(userID)
}

// generateVerificationCode draws a uniformly random 6-digit code in
// [100000, 999999].
func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
