package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"anexos/internal/config"
	"anexos/internal/domain"
)

// Claims represents the JWT claims issued by the access gate.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenResult holds an issued access token and its expiry.
type TokenResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AccessInput is the DTO for the shared-password gate.
type AccessInput struct {
	Password string `json:"password" binding:"required"`
}

// AuthService defines the access-gate contract. The product has a single
// shared password in front of the wizards rather than per-user accounts;
// passing the gate yields a short-lived JWT the wizard API requires.
type AuthService interface {
	Access(input AccessInput) (*TokenResult, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	access config.AccessConfig
	jwt    config.JWTConfig
}

// NewAuthService creates a new AuthService implementation.
func NewAuthService(access config.AccessConfig, jwtCfg config.JWTConfig) AuthService {
	return &authService{access: access, jwt: jwtCfg}
}

func (s *authService) Access(input AccessInput) (*TokenResult, error) {
	if !s.passwordMatches(input.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt := now.Add(s.jwt.AccessTokenExpiry)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.jwt.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.New().String(),
			Audience:  jwt.ClaimStrings{"access"},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwt.Secret))
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}

	return &TokenResult{Token: tokenString, ExpiresAt: expiresAt}, nil
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwt.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	aud, _ := claims.GetAudience()
	for _, a := range aud {
		if a == "access" {
			return claims, nil
		}
	}
	return nil, domain.ErrUnauthorized
}

// passwordMatches checks the candidate against the bcrypt hash when one is
// configured, otherwise against the plain password in constant time.
func (s *authService) passwordMatches(candidate string) bool {
	if s.access.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.access.PasswordHash), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.access.Password), []byte(candidate)) == 1
}
