package swipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
	"github.com/gdugdh24/clinicmatch-backend/internal/repository"
	"go.uber.org/zap"
)

type SwipeUseCase struct {
	swipeRepo   repository.SwipeRepository
	matchRepo   repository.MatchRepository
	profileRepo repository.ProfileRepository
	logger      *zap.Logger
}

func NewSwipeUseCase(
	swipeRepo repository.SwipeRepository,
	matchRepo repository.MatchRepository,
	profileRepo repository.ProfileRepository,
	logger *zap.Logger,
) *SwipeUseCase {
	return &SwipeUseCase{
		swipeRepo:   swipeRepo,
		matchRepo:   matchRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// SwipeRequest represents a swipe action
type SwipeRequest struct {
	SwipedID string           `json:"swiped_id" binding:"required"`
	Type     domain.SwipeType `json:"type" binding:"required"`
}

// SwipeResult reports whether the swipe produced a match. MatchID is set
// whenever the pair has a match, including one that existed before.
type SwipeResult struct {
	MatchCreated bool          `json:"match_created"`
	MatchID      *string       `json:"match_id,omitempty"`
	Match        *domain.Match `json:"match,omitempty"`
}

// RecordSwipe stores fromID's decision about toID and creates the match
// when it completes a mutual like. Re-sending the same swipe is safe: the
// decision is overwritten and an existing match is reported, never duplicated.
func (uc *SwipeUseCase) RecordSwipe(ctx context.Context, fromID, toID string, swipeType domain.SwipeType) (*SwipeResult, error) {
	if !swipeType.Valid() {
		return nil, domain.ErrInvalidSwipeType
	}
	fromID, toID = domain.CanonicalID(fromID), domain.CanonicalID(toID)
	if fromID == toID {
		return nil, domain.ErrSelfSwipe
	}

	for _, id := range []string{fromID, toID} {
		if _, err := uc.profileRepo.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}

	decision := &domain.SwipeDecision{
		FromProfileID: fromID,
		ToProfileID:   toID,
		Type:          swipeType,
	}
	if err := uc.swipeRepo.Upsert(ctx, decision); err != nil {
		return nil, fmt.Errorf("failed to record swipe: %w", err)
	}

	if !decision.IsLike() {
		return &SwipeResult{}, nil
	}

	reciprocal, err := uc.swipeRepo.GetByProfiles(ctx, toID, fromID)
	if err != nil {
		if errors.Is(err, domain.ErrSwipeNotFound) {
			return &SwipeResult{}, nil
		}
		return nil, fmt.Errorf("failed to check reciprocal swipe: %w", err)
	}
	if !reciprocal.IsLike() {
		return &SwipeResult{}, nil
	}

	existing, err := uc.matchRepo.GetByProfiles(ctx, fromID, toID)
	switch {
	case err == nil:
		return existingResult(existing), nil
	case !errors.Is(err, domain.ErrMatchNotFound):
		return nil, fmt.Errorf("failed to look up match: %w", err)
	}

	match := &domain.Match{ProfileAID: fromID, ProfileBID: toID}
	if err := uc.matchRepo.Create(ctx, match); err != nil {
		if !errors.Is(err, domain.ErrMatchAlreadyExists) {
			return nil, fmt.Errorf("failed to create match: %w", err)
		}
		// The other side created it first.
		existing, err := uc.matchRepo.GetByProfiles(ctx, fromID, toID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up match: %w", err)
		}
		return existingResult(existing), nil
	}

	uc.logger.Info("match created",
		zap.String("match_id", match.ID),
		zap.String("profile_a_id", match.ProfileAID),
		zap.String("profile_b_id", match.ProfileBID),
	)
	return &SwipeResult{MatchCreated: true, MatchID: &match.ID, Match: match}, nil
}

func existingResult(m *domain.Match) *SwipeResult {
	id := m.ID
	return &SwipeResult{MatchID: &id, Match: m}
}
