package repository

import (
	"context"
	"time"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, tokenHash string, session *domain.Session, ttl time.Duration) error
	GetByToken(ctx context.Context, tokenHash string) (*domain.Session, error)
	DeleteByToken(ctx context.Context, tokenHash string) error
}
