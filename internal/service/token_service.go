package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"inventory-api/internal/model"
)

// TokenService issues and verifies the signed session tokens carried by the
// access_token cookie. It is stateless: validity is determined purely by the
// HMAC signature and the expiry claim, so there is no revocation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token with the user ID as subject and a fixed TTL.
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})

	return token.SignedString(s.secret)
}

// Verify returns the subject user ID, or one of ErrTokenMissing,
// ErrTokenExpired, ErrTokenInvalid.
func (s *TokenService) Verify(tokenString string) (string, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", model.ErrTokenMissing
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if errors.Is(err, jwt.ErrTokenExpired) {
		return "", model.ErrTokenExpired
	}
	if err != nil || !parsed.Valid {
		return "", model.ErrTokenInvalid
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return "", model.ErrTokenInvalid
	}

	return claims.Subject, nil
}
