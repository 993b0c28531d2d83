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

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}

	// Inserts nothing unless the match is open. FOR SHARE holds off a
	// concurrent close until the insert is done.
	query := `
		INSERT INTO messages (id, match_id, sender_id, content)
		SELECT $1::uuid, $2::uuid, $3::uuid, $4::text
		WHERE EXISTS (SELECT 1 FROM matches WHERE id = $2::uuid AND is_closed = false FOR SHARE)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query, message.ID, message.MatchID, message.SenderID, message.Content).
		Scan(&message.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrMatchClosed
	}
	return wrapErr("create message", err)
}

func (r *messageRepository) ListByMatch(ctx context.Context, matchID string, limit, offset int) ([]*domain.Message, error) {
	var messages []*domain.Message
	query := `
		SELECT id, match_id, sender_id, content, created_at
		FROM messages WHERE match_id = $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2 OFFSET $3
	`
	if err := r.db.SelectContext(ctx, &messages, query, matchID, limit, offset); err != nil {
		return nil, wrapErr("list messages", err)
	}
	return messages, nil
}
