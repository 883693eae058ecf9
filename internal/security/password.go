package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordMatcher turns a supplied password into its stored form and checks a
// login attempt against it.
type PasswordMatcher interface {
	Encode(password string) (string, error)
	Matches(stored, supplied string) bool
}

// NewPasswordMatcher returns the matcher for scheme ("plain" or "bcrypt").
func NewPasswordMatcher(scheme string) (PasswordMatcher, error) {
	switch scheme {
	case "", "plain":
		return PlainMatcher{}, nil
	case "bcrypt":
		return BcryptMatcher{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}

// PlainMatcher stores passwords verbatim and compares them as plain strings.
type PlainMatcher struct{}

func (PlainMatcher) Encode(password string) (string, error) { return password, nil }

func (PlainMatcher) Matches(stored, supplied string) bool { return stored == supplied }

// BcryptMatcher stores bcrypt hashes.
type BcryptMatcher struct {
	Cost int
}

func (m BcryptMatcher) Encode(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (m BcryptMatcher) Matches(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}
