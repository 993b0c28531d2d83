package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
	"github.com/gdugdh24/clinicmatch-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const matchColumns = `id, profile_a_id, profile_b_id, is_closed, closed_by, created_at, updated_at`

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *domain.Match) error {
	// Ensure profile_a_id < profile_b_id for the pair constraint
	match.ProfileAID, match.ProfileBID = domain.NormalizePair(match.ProfileAID, match.ProfileBID)
	if match.ID == "" {
		match.ID = uuid.NewString()
	}

	query := `
		INSERT INTO matches (id, profile_a_id, profile_b_id, is_closed)
		VALUES ($1, $2, $3, false)
		ON CONFLICT (profile_a_id, profile_b_id) DO NOTHING
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, match.ID, match.ProfileAID, match.ProfileBID).
		Scan(&match.CreatedAt, &match.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err, "matches_pair_unique") {
			return domain.ErrMatchAlreadyExists
		}
		return wrapErr("create match", err)
	}
	match.IsClosed = false
	match.ClosedBy = nil
	return nil
}

func (r *matchRepository) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	id, ok := canonicalUUID(id)
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	var match domain.Match
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	if err := r.db.GetContext(ctx, &match, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, wrapErr("get match", err)
	}
	return &match, nil
}

func (r *matchRepository) GetByProfiles(ctx context.Context, profileAID, profileBID string) (*domain.Match, error) {
	profileAID, okA := canonicalUUID(profileAID)
	profileBID, okB := canonicalUUID(profileBID)
	if !okA || !okB {
		return nil, domain.ErrMatchNotFound
	}
	profileAID, profileBID = domain.NormalizePair(profileAID, profileBID)

	var match domain.Match
	query := `SELECT ` + matchColumns + ` FROM matches WHERE profile_a_id = $1 AND profile_b_id = $2`
	if err := r.db.GetContext(ctx, &match, query, profileAID, profileBID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, wrapErr("get match by profiles", err)
	}
	return &match, nil
}

func (r *matchRepository) ListByProfile(ctx context.Context, profileID string) ([]*domain.Match, error) {
	var matches []*domain.Match
	query := `
		SELECT ` + matchColumns + ` FROM matches
		WHERE (profile_a_id = $1 OR profile_b_id = $1)
		ORDER BY created_at DESC, id DESC
	`
	if err := r.db.SelectContext(ctx, &matches, query, profileID); err != nil {
		return nil, wrapErr("list matches", err)
	}
	return matches, nil
}

func (r *matchRepository) Close(ctx context.Context, id, closedBy string) (bool, error) {
	id, ok := canonicalUUID(id)
	if !ok {
		return false, domain.ErrMatchNotFound
	}
	query := `
		UPDATE matches
		SET is_closed = true, closed_by = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND is_closed = false
	`
	result, err := r.db.ExecContext(ctx, query, closedBy, id)
	if err != nil {
		return false, wrapErr("close match", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, wrapErr("close match", err)
	}
	if rows > 0 {
		return true, nil
	}

	// Nothing updated: either already closed or missing.
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM matches WHERE id = $1)`, id); err != nil {
		return false, wrapErr("close match", err)
	}
	if !exists {
		return false, domain.ErrMatchNotFound
	}
	return false, nil
}
