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

type swipeRepository struct {
	db *sqlx.DB
}

func NewSwipeRepository(db *sqlx.DB) repository.SwipeRepository {
	return &swipeRepository{db: db}
}

func (r *swipeRepository) Upsert(ctx context.Context, swipe *domain.SwipeDecision) error {
	if swipe.ID == "" {
		swipe.ID = uuid.NewString()
	}

	// On conflict the original row id is kept and only the decision moves.
	query := `
		INSERT INTO swipes (id, from_profile_id, to_profile_id, type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (from_profile_id, to_profile_id)
		DO UPDATE SET type = EXCLUDED.type, created_at = CURRENT_TIMESTAMP
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, swipe.ID, swipe.FromProfileID, swipe.ToProfileID, string(swipe.Type)).
		Scan(&swipe.ID, &swipe.CreatedAt)
	return wrapErr("upsert swipe", err)
}

func (r *swipeRepository) GetByProfiles(ctx context.Context, fromProfileID, toProfileID string) (*domain.SwipeDecision, error) {
	var swipe domain.SwipeDecision
	query := `
		SELECT id, from_profile_id, to_profile_id, type, created_at
		FROM swipes WHERE from_profile_id = $1 AND to_profile_id = $2
	`
	err := r.db.GetContext(ctx, &swipe, query, fromProfileID, toProfileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSwipeNotFound
		}
		return nil, wrapErr("get swipe", err)
	}
	return &swipe, nil
}
