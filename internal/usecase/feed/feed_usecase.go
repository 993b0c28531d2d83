package feed

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
	"github.com/gdugdh24/clinicmatch-backend/internal/repository"
	"github.com/gdugdh24/clinicmatch-backend/internal/usecase/profile"
	"go.uber.org/zap"
)

type FeedUseCase struct {
	profileRepo repository.ProfileRepository
	pageLimit   int
	logger      *zap.Logger
}

func NewFeedUseCase(
	profileRepo repository.ProfileRepository,
	pageLimit int,
	logger *zap.Logger,
) *FeedUseCase {
	if pageLimit <= 0 {
		pageLimit = DefaultPageLimit
	}
	return &FeedUseCase{
		profileRepo: profileRepo,
		pageLimit:   pageLimit,
		logger:      logger,
	}
}

// IncompleteProfileError is returned when the viewer must finish their
// profile before browsing.
type IncompleteProfileError struct {
	Completion profile.Completion
}

func (e *IncompleteProfileError) Error() string {
	return fmt.Sprintf("profile is incomplete: missing %v", e.Completion.MissingRequiredFields)
}

func (e *IncompleteProfileError) Unwrap() error {
	return domain.ErrProfileIncomplete
}

// FeedResponse is one page of discovery candidates
type FeedResponse struct {
	Candidates []domain.ProfileSummary `json:"candidates"`
	Limit      int                     `json:"limit"`
}

// GetFeed builds the discovery feed for viewerID. limit <= 0 uses the
// configured page limit; larger requests are capped at MaxPageLimit.
func (uc *FeedUseCase) GetFeed(ctx context.Context, viewerID string, limit int) (*FeedResponse, error) {
	switch {
	case limit <= 0:
		limit = uc.pageLimit
	case limit > MaxPageLimit:
		limit = MaxPageLimit
	}

	viewer, err := uc.profileRepo.GetByID(ctx, viewerID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, domain.ErrNotAuthenticated
		}
		return nil, err
	}

	if c := profile.Evaluate(viewer); !c.IsComplete {
		return nil, &IncompleteProfileError{Completion: c}
	}

	candidates := make([]*domain.Profile, 0, limit)
	scanned := 0
	// Self and already-decided profiles are excluded by the store; pages
	// are then filtered for completeness until the page is full.
	for offset := 0; len(candidates) < limit; offset += limit {
		page, err := uc.profileRepo.ListCandidates(ctx, viewer.ID, viewer.Role.Opposite(), limit, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to load feed: %w", err)
		}
		scanned += len(page)

		eligible, err := CandidatesFor(viewer, page, nil, limit-len(candidates))
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, eligible...)
		if len(page) < limit {
			break
		}
	}

	uc.logger.Debug("feed built",
		zap.String("viewer_id", viewer.ID),
		zap.Int("scanned", scanned),
		zap.Int("returned", len(candidates)),
	)

	resp := &FeedResponse{Candidates: make([]domain.ProfileSummary, 0, len(candidates)), Limit: limit}
	for _, c := range candidates {
		resp.Candidates = append(resp.Candidates, c.Summary())
	}
	return resp, nil
}
