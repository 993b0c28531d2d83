package message

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
	"github.com/gdugdh24/clinicmatch-backend/internal/repository"
	"go.uber.org/zap"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	matchRepo   repository.MatchRepository
	logger      *zap.Logger
}

func NewMessageUseCase(
	messageRepo repository.MessageRepository,
	matchRepo repository.MatchRepository,
	logger *zap.Logger,
) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		matchRepo:   matchRepo,
		logger:      logger,
	}
}

// SendMessageRequest represents a chat message
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// Send posts content to an open match the sender belongs to.
func (uc *MessageUseCase) Send(ctx context.Context, matchID, senderID, content string) (*domain.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrEmptyMessage
	}
	if utf8.RuneCountInString(content) > domain.MaxMessageLength {
		return nil, domain.ErrMessageTooLong
	}

	m, err := uc.participantMatch(ctx, matchID, senderID)
	if err != nil {
		return nil, err
	}
	if m.IsClosed {
		return nil, domain.ErrMatchClosed
	}

	// The insert re-checks that the match is open, so a close that lands
	// after the check above still refuses the message.
	msg := &domain.Message{
		MatchID:  m.ID,
		SenderID: senderID,
		Content:  content,
	}
	if err := uc.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	uc.logger.Debug("message sent", zap.String("match_id", m.ID), zap.String("sender_id", senderID))
	return msg, nil
}

// List returns the match's messages oldest first. Closed matches stay
// readable by their parties.
func (uc *MessageUseCase) List(ctx context.Context, matchID, profileID string, limit, offset int) ([]*domain.Message, error) {
	matchID = domain.CanonicalID(matchID)
	if _, err := uc.participantMatch(ctx, matchID, profileID); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	messages, err := uc.messageRepo.ListByMatch(ctx, matchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

func (uc *MessageUseCase) participantMatch(ctx context.Context, matchID, profileID string) (*domain.Match, error) {
	m, err := uc.matchRepo.GetByID(ctx, domain.CanonicalID(matchID))
	if err != nil {
		return nil, err
	}
	if !m.HasProfile(profileID) {
		return nil, domain.ErrNotMatchParticipant
	}
	return m, nil
}
