package profile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
	"github.com/gdugdh24/clinicmatch-backend/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUseCase(t *testing.T) (*ProfileUseCase, *sqlite.Store) {
	t.Helper()
	store, err := sqlite.NewStore(filepath.Join(t.TempDir(), "profile.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewProfileUseCase(store.Profiles(), zap.NewNop()), store
}

func seedWorker(t *testing.T, store *sqlite.Store) *domain.Profile {
	t.Helper()
	p := &domain.Profile{Role: domain.RoleWorker, Email: "anna@example.com", PasswordHash: "x", Name: "Anna"}
	require.NoError(t, store.Profiles().Create(context.Background(), p))
	return p
}

func TestProfileUseCase_UpdateCompletesProfile(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()
	p := seedWorker(t, store)

	before, err := uc.GetCompletion(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, before.IsComplete)

	got, err := uc.UpdateProfile(ctx, p.ID, &UpdateProfileRequest{
		Position:      ptr("  Optician "),
		PreferredArea: ptr("South"),
		Availability:  &domain.Availability{Days: []string{"FRI", "mon", "mon"}},
	})
	require.NoError(t, err)
	assert.True(t, got.Completion.IsComplete)
	assert.Equal(t, "Optician", *got.Position)
	assert.Equal(t, []string{"mon", "fri"}, got.Availability.Days)

	stored, err := uc.GetMyProfile(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, stored.Completion.IsComplete)
	assert.Equal(t, []string{"mon", "fri"}, stored.Availability.Days)
}

func TestProfileUseCase_BlankClearsField(t *testing.T) {
	uc, store := newTestUseCase(t)
	ctx := context.Background()
	p := seedWorker(t, store)

	_, err := uc.UpdateProfile(ctx, p.ID, &UpdateProfileRequest{PreferredArea: ptr("South")})
	require.NoError(t, err)

	got, err := uc.UpdateProfile(ctx, p.ID, &UpdateProfileRequest{PreferredArea: ptr("  ")})
	require.NoError(t, err)
	assert.Nil(t, got.PreferredArea)
	assert.Contains(t, got.Completion.MissingRequiredFields, FieldPreferredArea)
}

func TestProfileUseCase_RoleIsImmutable(t *testing.T) {
	uc, store := newTestUseCase(t)
	p := seedWorker(t, store)

	role := domain.RoleClinic
	_, err := uc.UpdateProfile(context.Background(), p.ID, &UpdateProfileRequest{Role: &role})
	assert.ErrorIs(t, err, domain.ErrRoleChangeForbidden)

	same := domain.RoleWorker
	_, err = uc.UpdateProfile(context.Background(), p.ID, &UpdateProfileRequest{Role: &same})
	assert.NoError(t, err)
}

func TestProfileUseCase_RejectsInvalidSalary(t *testing.T) {
	uc, store := newTestUseCase(t)
	p := seedWorker(t, store)

	_, err := uc.UpdateProfile(context.Background(), p.ID, &UpdateProfileRequest{
		SalaryRange: &domain.SalaryRange{Min: ptr(500), Max: ptr(100)},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProfileUseCase_ClinicCannotSetExperience(t *testing.T) {
	uc, store := newTestUseCase(t)
	clinic := &domain.Profile{Role: domain.RoleClinic, Email: "c@example.com", PasswordHash: "x", Name: "Smile"}
	require.NoError(t, store.Profiles().Create(context.Background(), clinic))

	_, err := uc.UpdateProfile(context.Background(), clinic.ID, &UpdateProfileRequest{ExperienceYears: ptr(3)})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProfileUseCase_NotFound(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.GetProfileSummary(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}
