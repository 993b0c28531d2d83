package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
	redisrepo "github.com/gdugdh24/clinicmatch-backend/internal/repository/redis"
	"github.com/gdugdh24/clinicmatch-backend/internal/repository/sqlite"
	"github.com/golang-jwt/jwt/v5"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestUseCase(t *testing.T) (*AuthUseCase, *miniredis.Miniredis) {
	t.Helper()
	store, err := sqlite.NewStore(filepath.Join(t.TempDir(), "auth.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	uc := NewAuthUseCase(store.Profiles(), redisrepo.NewSessionRepository(client), testSecret, time.Hour, zap.NewNop())
	return uc, mr
}

func register(t *testing.T, uc *AuthUseCase) *AuthResponse {
	t.Helper()
	resp, err := uc.Register(context.Background(), &RegisterRequest{
		Email: "  Anna@Example.com ", Password: "s3cret-pass", Role: domain.RoleWorker, Name: "Anna",
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterAndResolve(t *testing.T) {
	uc, _ := newTestUseCase(t)
	resp := register(t, uc)

	assert.True(t, resp.IsNew)
	assert.Equal(t, "anna@example.com", resp.Profile.Email)
	assert.NotEqual(t, "s3cret-pass", resp.Profile.PasswordHash)

	session, err := uc.Resolve(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Profile.ID, session.ProfileID)
	assert.Equal(t, domain.RoleWorker, session.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _ := newTestUseCase(t)
	register(t, uc)

	_, err := uc.Register(context.Background(), &RegisterRequest{
		Email: "anna@example.com", Password: "another-pass", Role: domain.RoleClinic, Name: "Other",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	_, err = uc.Register(context.Background(), &RegisterRequest{
		Email: "anna@example.com", Password: "another-pass", Role: domain.RoleWorker, Name: "Anna",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	_, err = uc.Register(context.Background(), &RegisterRequest{
		Email: "anna@example.com", Password: "s3cret-pass", Role: domain.RoleClinic, Name: "Anna",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestRegister_RetryAfterSessionFailure(t *testing.T) {
	uc, mr := newTestUseCase(t)
	ctx := context.Background()
	req := &RegisterRequest{Email: "anna@example.com", Password: "s3cret-pass", Role: domain.RoleWorker, Name: "Anna"}

	mr.Close()
	_, err := uc.Register(ctx, req)
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)

	require.NoError(t, mr.Restart())
	resp, err := uc.Register(ctx, req)
	require.NoError(t, err)
	assert.False(t, resp.IsNew)

	login, err := uc.Login(ctx, &LoginRequest{Email: req.Email, Password: req.Password})
	require.NoError(t, err)
	assert.Equal(t, login.Profile.ID, resp.Profile.ID)

	session, err := uc.Resolve(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Profile.ID, session.ProfileID)
}

func TestRegister_InvalidRole(t *testing.T) {
	uc, _ := newTestUseCase(t)
	_, err := uc.Register(context.Background(), &RegisterRequest{
		Email: "x@example.com", Password: "long-enough", Role: "admin", Name: "X",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestLogin(t *testing.T) {
	uc, _ := newTestUseCase(t)
	reg := register(t, uc)
	ctx := context.Background()

	resp, err := uc.Login(ctx, &LoginRequest{Email: "ANNA@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.False(t, resp.IsNew)
	assert.Equal(t, reg.Profile.ID, resp.Profile.ID)
	assert.NotEqual(t, reg.Token, resp.Token)

	_, err = uc.Login(ctx, &LoginRequest{Email: "anna@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(ctx, &LoginRequest{Email: "nobody@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogout(t *testing.T) {
	uc, _ := newTestUseCase(t)
	resp := register(t, uc)
	ctx := context.Background()

	require.NoError(t, uc.Logout(ctx, resp.Token))

	_, err := uc.Resolve(ctx, resp.Token)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestResolve_RejectsBadTokens(t *testing.T) {
	uc, mr := newTestUseCase(t)
	resp := register(t, uc)
	ctx := context.Background()

	_, err := uc.Resolve(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"profile_id": resp.Profile.ID,
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	signed, err := forged.SignedString([]byte("another-secret-another-secret-xx"))
	require.NoError(t, err)
	_, err = uc.Resolve(ctx, signed)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	// session dropped by redis expiry
	mr.FastForward(2 * time.Hour)
	_, err = uc.Resolve(ctx, resp.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
