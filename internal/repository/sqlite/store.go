package sqlite

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store wraps a SQLite database used for local development and tests. It
// implements the same repository contracts as the Postgres backend.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewStore opens (or creates) the database at path and migrates the schema.
func NewStore(path string, log *zap.Logger) (*Store, error) {
	dsn := "file::memory:"
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
		dsn = path
	}

	db, err := gorm.Open(sqlite.Open(dsn+"?_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql DB: %w", err)
	}
	// SQLite has a single writer; one connection serializes every statement.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&profileRecord{}, &swipeRecord{}, &matchRecord{}, &messageRecord{}); err != nil {
		return nil, fmt.Errorf("auto migrate models: %w", err)
	}

	log.Info("sqlite store ready", zap.String("path", path))
	return &Store{db: db, logger: log}, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get sql DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	return nil
}

func (s *Store) Profiles() *ProfileRepository { return &ProfileRepository{db: s.db} }
func (s *Store) Swipes() *SwipeRepository     { return &SwipeRepository{db: s.db} }
func (s *Store) Matches() *MatchRepository    { return &MatchRepository{db: s.db} }
func (s *Store) Messages() *MessageRepository { return &MessageRepository{db: s.db} }
