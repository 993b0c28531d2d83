package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestLoad_DefaultsWithEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("JWT_ACCESS_SECRET", secret)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, StoreDriverSQLite, cfg.Store.Driver)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 20, cfg.Feed.PageLimit)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.SessionTTL)
	assert.Equal(t, "localhost:6379", cfg.Redis.GetAddr())
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "DB_USER=clinic\nDB_NAME=clinicmatch\nDB_PASSWORD=pw\nJWT_ACCESS_SECRET=" + secret + "\nFEED_PAGE_LIMIT=10\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("FEED_PAGE_LIMIT", "15")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "clinic", cfg.Database.User)
	// the process environment wins over the file
	assert.Equal(t, 15, cfg.Feed.PageLimit)
	assert.Equal(t, "host=localhost port=5432 user=clinic password=pw dbname=clinicmatch sslmode=disable", cfg.Database.GetDSN())
	assert.Equal(t, "postgres://clinic:pw@localhost:5432/clinicmatch?sslmode=disable", cfg.Database.GetURL())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Store:    StoreConfig{Driver: StoreDriverPostgres},
			Database: DatabaseConfig{Host: "h", User: "u", DBName: "d"},
			JWT:      JWTConfig{AccessSecret: secret, SessionTTL: time.Hour},
			Feed:     FeedConfig{PageLimit: 20},
		}
	}
	require.NoError(t, valid().Validate())

	tests := map[string]func(c *Config){
		"short secret":    func(c *Config) { c.JWT.AccessSecret = "short" },
		"missing user":    func(c *Config) { c.Database.User = "" },
		"unknown driver":  func(c *Config) { c.Store.Driver = "mysql" },
		"sqlite no path":  func(c *Config) { c.Store.Driver = StoreDriverSQLite },
		"zero page limit": func(c *Config) { c.Feed.PageLimit = 0 },
		"zero ttl":        func(c *Config) { c.JWT.SessionTTL = 0 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
