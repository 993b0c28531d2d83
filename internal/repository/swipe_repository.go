package repository

import (
	"context"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
)

type SwipeRepository interface {
	// Upsert stores the decision for its ordered pair, replacing any earlier one.
	Upsert(ctx context.Context, swipe *domain.SwipeDecision) error
	GetByProfiles(ctx context.Context, fromProfileID, toProfileID string) (*domain.SwipeDecision, error)
}
