package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/nurture-api/internal/domain/entity"
	apperrors "github.com/yourusername/nurture-api/internal/pkg/errors"
	"github.com/yourusername/nurture-api/pkg/auth"
	"github.com/yourusername/nurture-api/pkg/hash"
)

// MockUserRepository implements repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) MarkVerified(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateVerificationCodeHash(userID, codeHash string) error {
	args := m.Called(userID, codeHash)
	return args.Error(0)
}

// MockEmailService implements EmailService and records the last code it
// was asked to deliver.
type MockEmailService struct {
	mock.Mock
	LastCode string
}

func (m *MockEmailService) SendVerificationCode(ctx context.Context, toEmail, name, code string) error {
	m.LastCode = code
	args := m.Called(ctx, toEmail, name, code)
	return args.Error(0)
}

func (m *MockEmailService) SendVerificationSuccess(ctx context.Context, toEmail, name string) error {
	args := m.Called(ctx, toEmail, name)
	return args.Error(0)
}

func (m *MockEmailService) SendContactMessage(ctx context.Context, fromName, fromEmail, subject, message string) error {
	args := m.Called(ctx, fromName, fromEmail, subject, message)
	return args.Error(0)
}

func createTestAuthService(t *testing.T, userRepo *MockUserRepository, emailService *MockEmailService) *AuthService {
	t.Helper()
	jwtService, err := auth.NewJWTService("test-secret-key", time.Hour)
	require.NoError(t, err)
	svc, err := NewAuthService(userRepo, emailService, jwtService)
	require.NoError(t, err)
	return svc
}

func TestAuthService_SignUp_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockEmail := new(MockEmailService)

	mockUserRepo.On("GetByEmail", "new@example.com").Return(nil, apperrors.ErrNotFound)
	mockUserRepo.On("Create", mock.AnythingOfType("*entity.User")).Return(nil)
	mockEmail.On("SendVerificationCode", mock.Anything, "new@example.com", "New Parent", mock.AnythingOfType("string")).Return(nil)

	authService := createTestAuthService(t, mockUserRepo, mockEmail)

	user, err := authService.SignUp(context.Background(), SignUpInput{
		Name:     "New Parent",
		Email:    "new@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "New Parent", user.Name)
	assert.Equal(t, "new@example.com", user.Email)
	assert.False(t, user.IsVerified, "a fresh signup must be pending")
	assert.NotEqual(t, "password123", user.Password, "password must be stored hashed")

	// The emailed code is 6 digits in [100000, 999999] and matches the
	// stored hash.
	require.Len(t, mockEmail.LastCode, 6)
	n, convErr := strconv.Atoi(mockEmail.LastCode)
	require.NoError(t, convErr)
	assert.GreaterOrEqual(t, n, 100000)
	assert.LessOrEqual(t, n, 999999)
	assert.True(t, hash.Verify(mockEmail.LastCode, user.VerificationCodeHash),
		"stored hash must match the emailed code")
	assert.False(t, hash.Verify("000000", user.VerificationCodeHash))

	mockUserRepo.AssertExpectations(t)
	mockEmail.AssertExpectations(t)
}

func TestAuthService_SignUp_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input SignUpInput
	}{
		{"missing name", SignUpInput{Name: "", Email: "a@b.com", Password: "password123"}},
		{"missing email", SignUpInput{Name: "A", Email: "", Password: "password123"}},
		{"missing password", SignUpInput{Name: "A", Email: "a@b.com", Password: ""}},
		{"whitespace only name", SignUpInput{Name: "   ", Email: "a@b.com", Password: "password123"}},
		{"malformed email", SignUpInput{Name: "A", Email: "not-an-email", Password: "password123"}},
		{"email without domain dot", SignUpInput{Name: "A", Email: "a@bcom", Password: "password123"}},
		{"short password", SignUpInput{Name: "A", Email: "a@b.com", Password: "short12"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(MockUserRepository)
			mockEmail := new(MockEmailService)
			authService := createTestAuthService(t, mockUserRepo, mockEmail)

			user, err := authService.SignUp(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Nil(t, user)
			// Validation failures must never touch the store.
			mockUserRepo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockEmail := new(MockEmailService)

	existing := &entity.User{ID: "u-1", Email: "existing@example.com"}
	mockUserRepo.On("GetByEmail", "existing@example.com").Return(existing, nil)

	authService := createTestAuthService(t, mockUserRepo, mockEmail)

	user, err := authService.SignUp(context.Background(), SignUpInput{
		Name:     "Someone",
		Email:    "existing@example.com",
		Password: "password123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Nil(t, user)
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_SignUp_ConcurrentDuplicate(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockEmail := new(MockEmailService)

	// Pre-check passes but the unique index rejects the insert: another
	// signup for the same email won the race.
	mockUserRepo.On("GetByEmail", "raced@example.com").Return(nil, apperrors.ErrNotFound)
	mockUserRepo.On("Create", mock.AnythingOfType("*entity.User")).
		Return(apperrors.ErrConflict)

	authService := createTestAuthService(t, mockUserRepo, mockEmail)

	user, err := authService.SignUp(context.Background(), SignUpInput{
		Name:     "Late Arrival",
		Email:    "raced@example.com",
		Password: "password123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Nil(t, user)
	mockEmail.AssertNotCalled(t, "SendVerificationCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_SignUp_EmailDeliveryFailure(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockEmail := new(MockEmailService)

	mockUserRepo.On("GetByEmail", "new@example.com").Return(nil, apperrors.ErrNotFound)
	mockUserRepo.On("Create", mock.AnythingOfType("*entity.User")).Return(nil)
	mockEmail.On("SendVerificationCode", mock.Anything, "new@example.com", "New Parent", mock.AnythingOfType("string")).
		Return(errors.New("gateway timeout"))

	authService := createTestAuthService(t, mockUserRepo, mockEmail)

	user, err := authService.SignUp(context.Background(), SignUpInput{
		Name:     "New Parent",
		Email:    "new@example.com",
		Password: "password123",
	})

	// The account is kept: the caller drives the resend path instead of
	// re-registering.
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmailDeliveryFailed)
	require.NotNil(t, user)
	assert.False(t, user.IsVerified)
	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_VerifyEmail_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockEmail := new(MockEmailService)

	codeHash, err := hash.Secret("123456")
	require.NoError(t, err)
	pending := &entity.User{
		ID:                   "u-1",
		Name:                 "Pending Parent",
		Email:                "pending@example.com",
		IsVerified:           false,
		VerificationCodeHash: codeHash,
	}

	mockUserRepo.On("GetByEmail", "pending@example.com").Return(pending, nil)
	mockUserRepo.On("MarkVerified", "u-1").Return(nil)
	mockEmail.On("SendVerificationSuccess", mock.Anything, "pending@example.com", "Pending Parent").Return(nil)

	authService := createTestAuthService(t, mockUserRepo, mockEmail)

	result, err := authService.VerifyEmail(context.Background(), "pending@example.com", "123456")

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Token, "verification must log the user in")
	assert.True(t, result.User.IsVerified)
	assert.Empty(t, result.User.VerificationCodeHash)
	mockUserRepo.AssertExpectations(t)
	mockEmail.AssertExpectations(t)
}

func TestAuthService_VerifyEmail_WrongCode(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockEmail := new(MockEmailService)

	codeHash, err := hash.Secret("123456")
	require.NoError(t, err)
	pending := &entity.User{
		ID:                   "u-1",
		Email:                "pending@example.com",
		IsVerified:           false,
		VerificationCodeHash: codeHash,
	}
	mockUserRepo.On("GetByEmail", "pending@example.com").Return(pending, nil)

	authService := createTestAuthService(t, mockUserRepo, mockEmail)

	result, err := authService.VerifyEmail(context.Background(), "pending@example.com", "654321")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidVerificationCode)
	assert.Nil(t, result)
	mockUserRepo.AssertNotCalled(t, "MarkVerified", mock.Anything)
}

func TestAuthService_VerifyEmail_AlreadyVerified(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockEmail := new(MockEmailService)

	// An active account holds no code hash, so even the originally
	// correct code cannot verify twice.
	active := &entity.User{
		ID:                   "u-1",
		Email:                "active@example.com",
		IsVerified:           true,
		VerificationCodeHash: "",
	}
	mockUserRepo.On("GetByEmail", "active@example.com").Return(active, nil)

	authService := createTestAuthService(t, mockUserRepo, mockEmail)

	result, err := authService.VerifyEmail(context.Background(), "active@example.com", "123456")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidVerificationCode)
	assert.Nil(t, result)
}

func TestAuthService_VerifyEmail_UnknownEmail(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockEmail := new(MockEmailService)

	mockUserRepo.On("GetByEmail", "nobody@example.com").Return(nil, apperrors.ErrNotFound)

	authService := createTestAuthService(t, mockUserRepo, mockEmail)

	result, err := authService.VerifyEmail(context.Background(), "nobody@example.com", "123456")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, result)
}

func TestAuthService_Login_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockEmail := new(MockEmailService)

	passwordHash, err := hash.Secret("password123")
	require.NoError(t, err)
	active := &entity.User{
		ID:         "u-1",
		Email:      "active@example.com",
		Password:   passwordHash,
		IsVerified: true,
	}
	mockUserRepo.On("GetByEmail", "active@example.com").Return(active, nil)

	authService := createTestAuthService(t, mockUserRepo, mockEmail)

	result, err := authService.Login("active@example.com", "password123")

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "u-1", result.User.ID)
}

func TestAuthService_Login_PendingAccount(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockEmail := new(MockEmailService)

	passwordHash, err := hash.Secret("password123")
	require.NoError(t, err)
	pending := &entity.User{
		ID:         "u-1",
		Email:      "pending@example.com",
		Password:   passwordHash,
		IsVerified: false,
	}
	mockUserRepo.On("GetByEmail", "pending@example.com").Return(pending, nil)

	authService := createTestAuthService(t, mockUserRepo, mockEmail)

	// Even the correct password cannot log a pending account in.
	result, err := authService.Login("pending@example.com", "password123")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmailNotVerified)
	assert.Nil(t, result)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	passwordHash, err := hash.Secret("password123")
	require.NoError(t, err)

	tests := []struct {
		name  string
		setup func(m *MockUserRepository)
	}{
		{
			name: "unknown email",
			setup: func(m *MockUserRepository) {
				m.On("GetByEmail", "x@example.com").Return(nil, apperrors.ErrNotFound)
			},
		},
		{
			name: "wrong password",
			setup: func(m *MockUserRepository) {
				m.On("GetByEmail", "x@example.com").Return(&entity.User{
					ID:         "u-1",
					Email:      "x@example.com",
					Password:   passwordHash,
					IsVerified: true,
				}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(MockUserRepository)
			mockEmail := new(MockEmailService)
			tt.setup(mockUserRepo)

			authService := createTestAuthService(t, mockUserRepo, mockEmail)

			// Both cases must produce the same error so responses cannot
			// be used to enumerate accounts.
			result, err := authService.Login("x@example.com", "wrongpassword")

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Nil(t, result)
		})
	}
}

func TestAuthService_ResendCode_PendingAccount(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockEmail := new(MockEmailService)

	oldHash, err := hash.Secret("111111")
	require.NoError(t, err)
	pending := &entity.User{
		ID:                   "u-1",
		Name:                 "Pending Parent",
		Email:                "pending@example.com",
		IsVerified:           false,
		VerificationCodeHash: oldHash,
	}
	mockUserRepo.On("GetByEmail", "pending@example.com").Return(pending, nil)

	var storedHash string
	mockUserRepo.On("UpdateVerificationCodeHash", "u-1", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { storedHash = args.String(1) }).
		Return(nil)
	mockEmail.On("SendVerificationCode", mock.Anything, "pending@example.com", "Pending Parent", mock.AnythingOfType("string")).Return(nil)

	authService := createTestAuthService(t, mockUserRepo, mockEmail)

	err = authService.ResendCode(context.Background(), "pending@example.com")

	require.NoError(t, err)
	assert.NotEmpty(t, mockEmail.LastCode)
	assert.True(t, hash.Verify(mockEmail.LastCode, storedHash),
		"the stored hash must match the newly emailed code")
	assert.False(t, hash.Verify("111111", storedHash),
		"the old code must be superseded")
	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_ResendCode_ActiveAccountIsSilent(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockEmail := new(MockEmailService)

	active := &entity.User{ID: "u-1", Email: "active@example.com", IsVerified: true}
	mockUserRepo.On("GetByEmail", "active@example.com").Return(active, nil)

	authService := createTestAuthService(t, mockUserRepo, mockEmail)

	err := authService.ResendCode(context.Background(), "active@example.com")

	require.NoError(t, err)
	mockUserRepo.AssertNotCalled(t, "UpdateVerificationCodeHash", mock.Anything, mock.Anything)
	mockEmail.AssertNotCalled(t, "SendVerificationCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
