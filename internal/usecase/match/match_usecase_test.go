package match

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
	"github.com/gdugdh24/clinicmatch-backend/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	store *sqlite.Store
	uc    *MatchUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := sqlite.NewStore(filepath.Join(t.TempDir(), "match.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return &fixture{store: store, uc: NewMatchUseCase(store.Matches(), store.Profiles(), zap.NewNop())}
}

func (f *fixture) profile(t *testing.T, name string, role domain.Role) *domain.Profile {
	t.Helper()
	p := &domain.Profile{Role: role, Email: name + "@example.com", PasswordHash: "x", Name: name}
	require.NoError(t, f.store.Profiles().Create(context.Background(), p))
	return p
}

func (f *fixture) match(t *testing.T, a, b *domain.Profile) *domain.Match {
	t.Helper()
	m := &domain.Match{ProfileAID: a.ID, ProfileBID: b.ID}
	require.NoError(t, f.store.Matches().Create(context.Background(), m))
	return m
}

func TestListMatches_NewestFirstWithOtherParty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	w := f.profile(t, "anna", domain.RoleWorker)
	c1 := f.profile(t, "smile", domain.RoleClinic)
	c2 := f.profile(t, "vision", domain.RoleClinic)

	first := f.match(t, w, c1)
	time.Sleep(5 * time.Millisecond)
	second := f.match(t, c2, w)

	_, err := f.uc.CloseMatch(ctx, first.ID, c1.ID)
	require.NoError(t, err)

	list, err := f.uc.ListMatches(ctx, w.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, second.ID, list[0].ID)
	assert.False(t, list[0].IsClosed)
	require.NotNil(t, list[0].OtherProfile)
	assert.Equal(t, c2.ID, list[0].OtherProfile.ID)

	assert.Equal(t, first.ID, list[1].ID)
	assert.True(t, list[1].IsClosed)
	assert.Equal(t, "smile", list[1].OtherProfile.Name)

	other, err := f.uc.ListMatches(ctx, c1.ID)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, w.ID, other[0].OtherProfile.ID)
}

func TestListMatches_Empty(t *testing.T) {
	f := newFixture(t)
	w := f.profile(t, "anna", domain.RoleWorker)

	list, err := f.uc.ListMatches(context.Background(), w.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCloseMatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	w := f.profile(t, "anna", domain.RoleWorker)
	c := f.profile(t, "smile", domain.RoleClinic)
	m := f.match(t, w, c)

	closed, err := f.uc.CloseMatch(ctx, m.ID, w.ID)
	require.NoError(t, err)
	assert.True(t, closed.IsClosed)
	require.NotNil(t, closed.ClosedBy)
	assert.Equal(t, w.ID, *closed.ClosedBy)
	assert.False(t, closed.UpdatedAt.Before(m.UpdatedAt))

	// second close by the other party is a no-op
	again, err := f.uc.CloseMatch(ctx, m.ID, c.ID)
	require.NoError(t, err)
	assert.True(t, again.IsClosed)
	assert.Equal(t, w.ID, *again.ClosedBy)
	assert.True(t, closed.UpdatedAt.Equal(again.UpdatedAt))
}

func TestCloseMatch_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	w := f.profile(t, "anna", domain.RoleWorker)
	c := f.profile(t, "smile", domain.RoleClinic)
	outsider := f.profile(t, "eve", domain.RoleWorker)
	m := f.match(t, w, c)

	_, err := f.uc.CloseMatch(ctx, "missing", w.ID)
	assert.ErrorIs(t, err, domain.ErrMatchNotFound)

	_, err = f.uc.CloseMatch(ctx, m.ID, outsider.ID)
	assert.ErrorIs(t, err, domain.ErrNotMatchParticipant)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	still, err := f.store.Matches().GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, still.IsClosed)
}

func TestMatchStore_DuplicatePairRejected(t *testing.T) {
	f := newFixture(t)
	w := f.profile(t, "anna", domain.RoleWorker)
	c := f.profile(t, "smile", domain.RoleClinic)
	f.match(t, w, c)

	err := f.store.Matches().Create(context.Background(), &domain.Match{ProfileAID: c.ID, ProfileBID: w.ID})
	assert.ErrorIs(t, err, domain.ErrMatchAlreadyExists)
}
