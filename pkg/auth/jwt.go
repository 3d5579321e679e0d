package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single error returned for every verification
// failure: bad signature, malformed structure, wrong algorithm or expiry.
// Callers must not be able to tell these apart.
var ErrInvalidToken = errors.New("invalid or expired token")

// JWTCustomClaims carries the user identity inside a session token.
type JWTCustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies signed session tokens. Stateless: the
// only shared state is the process-wide signing secret.
type JWTService struct {
	secret []byte
	expiry time.Duration

	// now is swapped out in tests to exercise expiry boundaries.
	now func() time.Time
}

// NewJWTService creates the token service. An empty secret is a
// configuration error; the process must refuse to start rather than sign
// tokens with a guessable default.
func NewJWTService(secret string, expiry time.Duration) (*JWTService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT signing secret is required")
	}
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &JWTService{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}, nil
}

// GenerateToken signs a token embedding the user identity with the
// configured validity window.
func (s *JWTService) GenerateToken(userID, email string) (string, error) {
	now := s.now()
	claims := &JWTCustomClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "nurture-api",
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies signature and expiry and returns the embedded
// claims. All failures collapse into ErrInvalidToken.
func (s *JWTService) ParseToken(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}

	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, keyFunc,
		jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Expiry returns the configured token lifetime.
func (s *JWTService) Expiry() time.Duration {
	return s.expiry
}
