// Package auth issues and verifies the signed session tokens used by the API,
// and wraps password hashing.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: malformed, expired, bad
// signature. Callers must not distinguish them in responses.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the typed token payload. UserID stays string-encoded on the wire.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// SubjectID returns the numeric account id carried by the claims.
func (claims *Claims) SubjectID() (uint, error) {
	id, err := strconv.ParseUint(claims.UserID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse user_id claim: %w", err)
	}
	return uint(id), nil
}

type TokenManager struct {
	secretKey []byte
	tokenTTL  time.Duration
}

func NewTokenManager(secretKey string, tokenTTL time.Duration) *TokenManager {
	return &TokenManager{
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
}

// Issue signs a token for the given account. userType is "primary" for end
// users, or the master account's own role.
func (manager *TokenManager) Issue(userID uint, username string, userType string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   strconv.FormatUint(uint64(userID), 10),
		Username: username,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(manager.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(manager.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses the token and checks signature and expiry. Any failure maps to
// ErrInvalidToken; the underlying cause is wrapped for logging only.
func (manager *TokenManager) Verify(rawToken string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return manager.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
