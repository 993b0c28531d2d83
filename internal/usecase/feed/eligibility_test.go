package feed

import (
	"fmt"
	"testing"
	"time"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

var baseTime = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func worker(id string, age time.Duration) *domain.Profile {
	return &domain.Profile{
		ID:            id,
		Role:          domain.RoleWorker,
		Name:          "worker " + id,
		Position:      ptr("Nurse"),
		PreferredArea: ptr("North"),
		CreatedAt:     baseTime.Add(-age),
	}
}

func clinic(id string, age time.Duration) *domain.Profile {
	return &domain.Profile{
		ID:               id,
		Role:             domain.RoleClinic,
		Name:             "clinic " + id,
		RequiredPosition: ptr("Nurse"),
		City:             ptr("Lyon"),
		CreatedAt:        baseTime.Add(-age),
	}
}

func ids(ps []*domain.Profile) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestCandidatesFor_NilViewer(t *testing.T) {
	_, err := CandidatesFor(nil, []*domain.Profile{clinic("c1", 0)}, nil, 0)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestCandidatesFor_IncompleteViewerGetsNothing(t *testing.T) {
	viewer := clinic("c0", 0)
	viewer.City = nil

	got, err := CandidatesFor(viewer, []*domain.Profile{worker("w1", 0)}, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCandidatesFor_Filters(t *testing.T) {
	viewer := worker("w0", 0)
	incomplete := clinic("c4", 4*time.Hour)
	incomplete.RequiredPosition = nil

	pool := []*domain.Profile{
		viewer,
		worker("w1", time.Hour),
		clinic("c1", time.Hour),
		clinic("c2", 2*time.Hour),
		clinic("c3", 3*time.Hour),
		incomplete,
	}
	decisions := []*domain.SwipeDecision{
		{FromProfileID: "w0", ToProfileID: "c1", Type: domain.SwipeLike},
		{FromProfileID: "w0", ToProfileID: "c2", Type: domain.SwipePass},
		// someone else's decision does not hide c3
		{FromProfileID: "w9", ToProfileID: "c3", Type: domain.SwipePass},
	}

	got, err := CandidatesFor(viewer, pool, decisions, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"c3"}, ids(got))
}

func TestCandidatesFor_OrderAndCap(t *testing.T) {
	viewer := clinic("c0", 0)
	pool := []*domain.Profile{
		worker("w-old", 3*time.Hour),
		worker("w-b", time.Hour),
		worker("w-a", time.Hour),
		worker("w-new", 0),
	}

	got, err := CandidatesFor(viewer, pool, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"w-new", "w-a", "w-b", "w-old"}, ids(got))

	got, err = CandidatesFor(viewer, pool, nil, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"w-new", "w-a"}, ids(got))
}

func TestCandidatesFor_DefaultLimit(t *testing.T) {
	viewer := clinic("c0", 0)
	var pool []*domain.Profile
	for i := 0; i < DefaultPageLimit+5; i++ {
		pool = append(pool, worker(fmt.Sprintf("w%02d", i), time.Duration(i)*time.Minute))
	}

	got, err := CandidatesFor(viewer, pool, nil, 0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultPageLimit)
	assert.Equal(t, "w00", got[0].ID)
}

func TestCandidatesFor_NeverReturnsSelfOrSameRole(t *testing.T) {
	viewer := worker("w0", 0)
	pool := []*domain.Profile{viewer, worker("w1", 0), worker("w2", 0), nil}

	got, err := CandidatesFor(viewer, pool, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
