package feed

import (
	"sort"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
	"github.com/gdugdh24/clinicmatch-backend/internal/usecase/profile"
)

// DefaultPageLimit caps a feed page when no limit is configured.
const DefaultPageLimit = 20

// MaxPageLimit is the largest page a caller may request.
const MaxPageLimit = 50

// CandidatesFor returns the profiles viewer may be shown, newest first.
//
// Only complete profiles of the opposite role that the viewer has never
// decided on are eligible. An incomplete viewer gets an empty feed. The
// result is capped at limit (DefaultPageLimit when limit <= 0) after a stable
// sort by creation time descending, then id ascending.
func CandidatesFor(viewer *domain.Profile, pool []*domain.Profile, decisions []*domain.SwipeDecision, limit int) ([]*domain.Profile, error) {
	if viewer == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if !profile.IsComplete(viewer) {
		return []*domain.Profile{}, nil
	}

	decided := make(map[string]struct{}, len(decisions))
	for _, d := range decisions {
		if d.FromProfileID == viewer.ID {
			decided[d.ToProfileID] = struct{}{}
		}
	}

	want := viewer.Role.Opposite()
	candidates := make([]*domain.Profile, 0, len(pool))
	for _, p := range pool {
		if p == nil || p.ID == viewer.ID || p.Role != want {
			continue
		}
		if _, ok := decided[p.ID]; ok {
			continue
		}
		if !profile.IsComplete(p) {
			continue
		}
		candidates = append(candidates, p)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}
