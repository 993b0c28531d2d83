package container

import (
	"context"
	"net"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gdugdh24/clinicmatch-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sqliteConfig(t *testing.T, redisAddr string) *config.Config {
	t.Helper()
	host, portStr, err := net.SplitHostPort(redisAddr)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0, ShutdownTimeout: time.Second},
		Store:  config.StoreConfig{Driver: config.StoreDriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "app.db")},
		Redis:  config.RedisConfig{Host: host, Port: port},
		JWT:    config.JWTConfig{AccessSecret: "0123456789abcdef0123456789abcdef", SessionTTL: time.Hour},
		Feed:   config.FeedConfig{PageLimit: 20},
	}
}

func TestNewContainer_SQLite(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := sqliteConfig(t, mr.Addr())

	c, err := NewContainer(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, c.Server)
	assert.NotNil(t, c.Redis)
	assert.Nil(t, c.Gemini)

	assert.NoError(t, c.Close())
	// closing twice is harmless
	assert.NoError(t, c.Close())
}

func TestNewContainer_UnknownDriver(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := sqliteConfig(t, mr.Addr())
	cfg.Store.Driver = "mongo"

	_, err := NewContainer(context.Background(), cfg, zap.NewNop())
	assert.ErrorContains(t, err, "unknown store driver")
}

func TestNewContainer_RedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := sqliteConfig(t, mr.Addr())
	mr.Close()

	_, err := NewContainer(context.Background(), cfg, zap.NewNop())
	assert.ErrorContains(t, err, "redis")
}
