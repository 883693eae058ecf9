package service

import (
	"context"
	"fmt"

	"scent-shop/internal/model"
	"scent-shop/internal/repository"
	"scent-shop/internal/security"

	"github.com/rs/zerolog"
)

// authService implements AuthService.
type authService struct {
	memberRepo repository.MemberRepository
	tokens     *security.TokenManager
	passwords  security.PasswordMatcher
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service. passwords decides how credentials
// are stored and compared.
func NewAuthService(
	memberRepo repository.MemberRepository,
	tokens *security.TokenManager,
	passwords security.PasswordMatcher,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		memberRepo: memberRepo,
		tokens:     tokens,
		passwords:  passwords,
		logger:     logger.With().Str("service", "auth").Logger(),
	}
}

// Register stores a new member. No uniqueness check is made on the username.
func (s *authService) Register(ctx context.Context, creds model.Credentials) (*model.Member, error) {
	stored, err := s.passwords.Encode(creds.Password)
	if err != nil {
		s.logger.Error().Err(err).Str("username", creds.Username).Msg("failed to encode password")
		return nil, fmt.Errorf("failed to register member: %w", err)
	}

	member := &model.Member{Username: creds.Username, Password: stored}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		s.logger.Error().Err(err).Str("username", creds.Username).Msg("failed to register member")
		return nil, fmt.Errorf("failed to register member: %w", err)
	}

	s.logger.Info().
		Str("username", member.Username).
		Str("member_id", member.ObjectID.String()).
		Msg("member registered")

	return member, nil
}

// Login verifies credentials and issues a token for the matched member.
func (s *authService) Login(ctx context.Context, creds model.Credentials) (string, error) {
	member, err := s.memberRepo.GetByUsername(ctx, creds.Username)
	if err != nil {
		s.logger.Error().Err(err).Str("username", creds.Username).Msg("failed to look up member")
		return "", fmt.Errorf("failed to look up member: %w", err)
	}

	if member == nil {
		s.logger.Debug().Str("username", creds.Username).Msg("login for unknown username")
		return "", model.ErrMemberNotFound
	}

	if !s.passwords.Matches(member.Password, creds.Password) {
		s.logger.Warn().Str("username", creds.Username).Msg("login with invalid password")
		return "", model.ErrInvalidPassword
	}

	token, err := s.tokens.Sign(member.ObjectID.String())
	if err != nil {
		s.logger.Error().Err(err).Str("member_id", member.ObjectID.String()).Msg("failed to sign token")
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Str("member_id", member.ObjectID.String()).Msg("member logged in")

	return token, nil
}

// VerifyToken returns the member id carried by raw.
func (s *authService) VerifyToken(raw string) (string, error) {
	if raw == "" {
		return "", model.ErrMissingToken
	}

	claims, err := s.tokens.Parse(raw)
	if err != nil {
		s.logger.Debug().Err(err).Msg("token rejected")
		return "", model.ErrInvalidToken
	}

	return claims.MemberID, nil
}
