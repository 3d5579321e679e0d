package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/nurture-api/internal/domain/entity"
	"github.com/yourusername/nurture-api/internal/middleware"
	apperrors "github.com/yourusername/nurture-api/internal/pkg/errors"
	"github.com/yourusername/nurture-api/internal/service"
)

// AuthHandler handles signup, verification and login requests.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest is the signup payload.
type SignupRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8"`
}

// VerifyEmailRequest is the verification payload.
type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ResendCodeRequest is the resend payload.
type ResendCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// userJSON strips an account down to the fields a client may see.
// Password and code hashes never leave the server.
func userJSON(user *entity.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	}
}

// Signup creates a pending account and emails the verification code. The
// code itself is never part of the response.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "error_type": "validation_error"})
		return
	}

	_, err := h.authService.SignUp(c.Request.Context(), service.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailDeliveryFailed) {
			// The account exists and stays pending; the client is told
			// explicitly so it can drive the resend path.
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":      "Account created, but the verification email could not be sent. Please request a new code.",
				"error_type": "email_delivery_failed",
				"redirect":   "/resend-code",
			})
			return
		}
		h.handleAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Account created. Check your email for the verification code.",
		"redirect": "/verify-email",
	})
}

// VerifyEmail checks the one-time code, activates the account and logs
// the user in.
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "error_type": "validation_error"})
		return
	}

	result, err := h.authService.VerifyEmail(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Email verified successfully.",
		"token":    result.Token,
		"user":     userJSON(result.User),
		"redirect": "/dashboard",
	})
}

// Login authenticates an active account.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "error_type": "validation_error"})
		return
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful.",
		"token":    result.Token,
		"user":     userJSON(result.User),
		"redirect": "/dashboard",
	})
}

// ResendCode re-sends a verification code to a pending account.
func (h *AuthHandler) ResendCode(c *gin.Context) {
	var req ResendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "error_type": "validation_error"})
		return
	}

	if err := h.authService.ResendCode(c.Request.Context(), req.Email); err != nil {
		h.handleAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If the account is pending, a new code has been sent."})
}

// GetMe returns the authenticated user's profile.
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "error_type": "token_missing"})
		return
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userJSON(user)})
}

// handleAuthError maps service errors onto the HTTP taxonomy. Unknown
// errors are logged server-side and answered with a generic message.
func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation_error"})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists.", "error_type": "conflict"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found.", "error_type": "not_found"})
	case errors.Is(err, service.ErrInvalidVerificationCode):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid verification code.", "error_type": "invalid_verification_code"})
	case errors.Is(err, service.ErrInvalidCredentials):
		// Same message for unknown email and wrong password.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password.", "error_type": "invalid_credentials"})
	case errors.Is(err, service.ErrEmailNotVerified):
		c.JSON(http.StatusForbidden, gin.H{"error": "Please verify your email before logging in.", "error_type": "email_not_verified"})
	case errors.Is(err, service.ErrEmailDeliveryFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Email could not be sent. Please try again.", "error_type": "email_delivery_failed"})
	default:
		log.Printf("[AuthHandler] internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error.", "error_type": "internal_server_error"})
	}
}
