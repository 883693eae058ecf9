package repository

import (
	"context"
	"errors"
	"fmt"

	"scent-shop/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// memberRepository implements the MemberRepository interface using PostgreSQL.
type memberRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMemberRepository creates a new PostgreSQL-backed member repository.
func NewMemberRepository(pool *pgxpool.Pool, logger zerolog.Logger) MemberRepository {
	return &memberRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "member").Logger(),
	}
}

// Create inserts a member with a freshly assigned ObjectID.
func (r *memberRepository) Create(ctx context.Context, member *model.Member) error {
	if member.ObjectID == uuid.Nil {
		member.ObjectID = uuid.New()
	}

	query := `INSERT INTO members (object_id, username, password) VALUES ($1, $2, $3)`

	if _, err := r.pool.Exec(ctx, query, member.ObjectID, member.Username, member.Password); err != nil {
		r.logger.Error().Err(err).Str("username", member.Username).Msg("failed to create member")
		return fmt.Errorf("failed to create member: %w", err)
	}

	r.logger.Debug().
		Str("username", member.Username).
		Str("object_id", member.ObjectID.String()).
		Msg("member created successfully")

	return nil
}

// GetByUsername retrieves the earliest registered member with the username.
func (r *memberRepository) GetByUsername(ctx context.Context, username string) (*model.Member, error) {
	query := `
		SELECT object_id, username, password
		FROM members
		WHERE username = $1
		ORDER BY seq
		LIMIT 1
	`

	var m model.Member
	err := r.pool.QueryRow(ctx, query, username).Scan(&m.ObjectID, &m.Username, &m.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("username", username).Msg("member not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("username", username).Msg("failed to query member")
		return nil, fmt.Errorf("failed to query member: %w", err)
	}

	return &m, nil
}
