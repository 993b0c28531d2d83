package repository

import (
	"context"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
)

type MatchRepository interface {
	// Create inserts the match for its normalized pair. It returns
	// domain.ErrMatchAlreadyExists when the pair already has a match.
	Create(ctx context.Context, match *domain.Match) error
	GetByID(ctx context.Context, id string) (*domain.Match, error)
	GetByProfiles(ctx context.Context, profileAID, profileBID string) (*domain.Match, error)
	ListByProfile(ctx context.Context, profileID string) ([]*domain.Match, error)
	// Close marks an open match closed. It returns false without error when
	// the match was already closed.
	Close(ctx context.Context, id, closedBy string) (bool, error)
}
