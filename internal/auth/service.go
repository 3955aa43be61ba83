package auth

import (
	"fmt"
	"time"

	"team-capacity-backend/internal/database/models"
	apperrors "team-capacity-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "team-capacity-backend"

// AuthService signs and validates bearer tokens
type AuthService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID string          `json:"user_id" example:"5f0c2b8e-6a38-4c1f-9c1e-1f5b3f7a9d10"`
	Email  string          `json:"email" example:"jane.doe@example.com"`
	Role   models.UserRole `json:"role" example:"admin"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string, ttl time.Duration) (*AuthService, error) {
	if secret == "" {
		return nil, apperrors.ErrJWTSecretMissing
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &AuthService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// GenerateJWT issues a signed token for a user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		if !claims.Role.IsValid() {
			return nil, fmt.Errorf("unknown role %q", claims.Role)
		}
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}
