package repository

import (
	"context"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	// ListCandidates pages through profiles of role that viewerID is not
	// and has not swiped on, newest first (created_at DESC, id ASC).
	ListCandidates(ctx context.Context, viewerID string, role domain.Role, limit, offset int) ([]*domain.Profile, error)
}
