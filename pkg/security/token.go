package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	pkgerrors "social-network-service/pkg/errors"
)

// Claims carries the acting user's identifier inside a signed token
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies stateless HS256-signed identity tokens.
// Validity is determined entirely by signature and expiry; there is no
// server-side revocation list.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService with the given signing secret and
// token lifetime
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token binding the given user identifier
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates a token and extracts the acting user identifier.
// The identity returned here is the sole source of truth for ownership
// checks downstream.
func (s *TokenService) Verify(tokenStr string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", pkgerrors.ErrUnauthorized
	}
	if claims.UserID == "" {
		return "", pkgerrors.ErrUnauthorized
	}
	return claims.UserID, nil
}
