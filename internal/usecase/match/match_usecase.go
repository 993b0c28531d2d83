package match

import (
	"context"
	"fmt"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
	"github.com/gdugdh24/clinicmatch-backend/internal/repository"
	"go.uber.org/zap"
)

type MatchUseCase struct {
	matchRepo   repository.MatchRepository
	profileRepo repository.ProfileRepository
	logger      *zap.Logger
}

func NewMatchUseCase(
	matchRepo repository.MatchRepository,
	profileRepo repository.ProfileRepository,
	logger *zap.Logger,
) *MatchUseCase {
	return &MatchUseCase{
		matchRepo:   matchRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// ListMatches returns every match profileID is a party of, open and closed,
// newest first. Each entry carries the other party's summary.
func (uc *MatchUseCase) ListMatches(ctx context.Context, profileID string) ([]*domain.MatchWithProfile, error) {
	matches, err := uc.matchRepo.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	otherIDs := make([]string, 0, len(matches))
	for _, m := range matches {
		if other, ok := m.OtherProfileID(profileID); ok {
			otherIDs = append(otherIDs, other)
		}
	}

	others, err := uc.profileRepo.GetByIDs(ctx, otherIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load matched profiles: %w", err)
	}
	summaries := make(map[string]*domain.ProfileSummary, len(others))
	for _, p := range others {
		s := p.Summary()
		summaries[p.ID] = &s
	}

	result := make([]*domain.MatchWithProfile, 0, len(matches))
	for _, m := range matches {
		other, _ := m.OtherProfileID(profileID)
		result = append(result, &domain.MatchWithProfile{
			Match:        m,
			OtherProfile: summaries[other],
		})
	}
	return result, nil
}

// GetMatch returns the match if profileID is one of its parties.
func (uc *MatchUseCase) GetMatch(ctx context.Context, matchID, profileID string) (*domain.Match, error) {
	m, err := uc.matchRepo.GetByID(ctx, domain.CanonicalID(matchID))
	if err != nil {
		return nil, err
	}
	if !m.HasProfile(profileID) {
		return nil, domain.ErrNotMatchParticipant
	}
	return m, nil
}

// CloseMatch closes the match on behalf of one of its parties. Closing an
// already closed match returns it unchanged.
func (uc *MatchUseCase) CloseMatch(ctx context.Context, matchID, closingProfileID string) (*domain.Match, error) {
	matchID = domain.CanonicalID(matchID)
	m, err := uc.GetMatch(ctx, matchID, closingProfileID)
	if err != nil {
		return nil, err
	}
	if m.IsClosed {
		return m, nil
	}

	closed, err := uc.matchRepo.Close(ctx, matchID, closingProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to close match: %w", err)
	}
	if closed {
		uc.logger.Info("match closed",
			zap.String("match_id", matchID),
			zap.String("closed_by", closingProfileID),
		)
	}

	return uc.matchRepo.GetByID(ctx, matchID)
}
