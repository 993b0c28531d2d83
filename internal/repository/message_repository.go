package repository

import (
	"context"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	ListByMatch(ctx context.Context, matchID string, limit, offset int) ([]*domain.Message, error)
}
