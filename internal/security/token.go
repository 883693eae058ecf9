package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenMalformed is returned for tokens that fail parsing or signature checks.
	ErrTokenMalformed = errors.New("token is malformed or has an invalid signature")
	// ErrEmptySecret is returned when a TokenManager is built without a secret.
	ErrEmptySecret = errors.New("token secret must not be empty")
)

// Claims identify a member. Tokens carry no expiry.
type Claims struct {
	MemberID string `json:"_id"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 member tokens with a shared secret.
type TokenManager struct {
	secret []byte
	now    func() time.Time
}

// NewTokenManager builds a TokenManager for the given signing secret.
func NewTokenManager(secret string) (*TokenManager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &TokenManager{secret: []byte(secret), now: time.Now}, nil
}

// Sign issues a token for memberID.
func (m *TokenManager) Sign(memberID string) (string, error) {
	claims := Claims{
		MemberID: memberID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  memberID,
			IssuedAt: jwt.NewNumericDate(m.now()),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies raw and returns its claims.
func (m *TokenManager) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuedAt())
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}
	if claims.MemberID == "" {
		return nil, fmt.Errorf("%w: missing member id", ErrTokenMalformed)
	}
	return claims, nil
}
