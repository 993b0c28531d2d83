package container

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdugdh24/clinicmatch-backend/internal/catalog"
	"github.com/gdugdh24/clinicmatch-backend/internal/config"
	"github.com/gdugdh24/clinicmatch-backend/internal/delivery/http"
	"github.com/gdugdh24/clinicmatch-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/clinicmatch-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/clinicmatch-backend/internal/infrastructure/database"
	"github.com/gdugdh24/clinicmatch-backend/internal/infrastructure/gemini"
	"github.com/gdugdh24/clinicmatch-backend/internal/infrastructure/server"
	"github.com/gdugdh24/clinicmatch-backend/internal/repository"
	"github.com/gdugdh24/clinicmatch-backend/internal/repository/postgres"
	redisrepo "github.com/gdugdh24/clinicmatch-backend/internal/repository/redis"
	"github.com/gdugdh24/clinicmatch-backend/internal/repository/sqlite"
	"github.com/gdugdh24/clinicmatch-backend/internal/usecase/auth"
	"github.com/gdugdh24/clinicmatch-backend/internal/usecase/feed"
	"github.com/gdugdh24/clinicmatch-backend/internal/usecase/match"
	"github.com/gdugdh24/clinicmatch-backend/internal/usecase/message"
	"github.com/gdugdh24/clinicmatch-backend/internal/usecase/profile"
	"github.com/gdugdh24/clinicmatch-backend/internal/usecase/suggest"
	"github.com/gdugdh24/clinicmatch-backend/internal/usecase/swipe"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config  *config.Config
	Redis   *redis.Client
	Server  *server.Server
	Gemini  *gemini.GeminiClient
	logger  *zap.Logger
	closers []func() error
}

// repositories is the store-specific half of the wiring.
type repositories struct {
	profiles repository.ProfileRepository
	swipes   repository.SwipeRepository
	matches  repository.MatchRepository
	messages repository.MessageRepository
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	c := &Container{Config: cfg, logger: logger}

	repos, err := c.openStore(cfg)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	redisClient, err := database.NewRedisClient(&cfg.Redis, logger)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}
	c.Redis = redisClient
	c.closers = append(c.closers, redisClient.Close)

	// Suggestions fall back to templates without a Gemini client.
	var generator suggest.Generator
	geminiClient, err := gemini.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, logger)
	if err != nil {
		logger.Warn("gemini client disabled", zap.Error(err))
	} else {
		c.Gemini = geminiClient
		c.closers = append(c.closers, geminiClient.Close)
		generator = geminiClient
	}

	domains, err := catalog.Default()
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	sessionRepo := redisrepo.NewSessionRepository(redisClient)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		repos.profiles,
		sessionRepo,
		cfg.JWT.AccessSecret,
		cfg.JWT.SessionTTL,
		logger,
	)
	profileUseCase := profile.NewProfileUseCase(repos.profiles, logger)
	feedUseCase := feed.NewFeedUseCase(repos.profiles, cfg.Feed.PageLimit, logger)
	swipeUseCase := swipe.NewSwipeUseCase(repos.swipes, repos.matches, repos.profiles, logger)
	matchUseCase := match.NewMatchUseCase(repos.matches, repos.profiles, logger)
	messageUseCase := message.NewMessageUseCase(repos.messages, repos.matches, logger)
	suggestUseCase := suggest.NewSuggestUseCase(repos.profiles, repos.matches, generator, logger)

	// Initialize router
	router := http.NewRouter(
		handler.NewAuthHandler(authUseCase, profileUseCase, logger),
		handler.NewProfileHandler(profileUseCase, logger),
		handler.NewFeedHandler(feedUseCase, logger),
		handler.NewSwipeHandler(swipeUseCase, logger),
		handler.NewMatchHandler(matchUseCase, messageUseCase, logger),
		handler.NewSuggestionHandler(suggestUseCase, logger),
		handler.NewCatalogHandler(domains),
		middleware.NewAuthMiddleware(authUseCase),
		logger,
	)

	c.Server = server.NewServer(&cfg.Server, router.Setup(), logger)
	return c, nil
}

func (c *Container) openStore(cfg *config.Config) (*repositories, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverSQLite:
		store, err := sqlite.NewStore(cfg.Store.SQLitePath, c.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite store: %w", err)
		}
		c.closers = append(c.closers, store.Close)
		return &repositories{
			profiles: store.Profiles(),
			swipes:   store.Swipes(),
			matches:  store.Matches(),
			messages: store.Messages(),
		}, nil

	case config.StoreDriverPostgres:
		db, err := database.NewPostgresDB(&cfg.Database, c.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		c.closers = append(c.closers, db.Close)
		if cfg.Database.Migrate {
			if err := database.Migrate(db, c.logger); err != nil {
				return nil, err
			}
		}
		return &repositories{
			profiles: postgres.NewProfileRepository(db, c.logger),
			swipes:   postgres.NewSwipeRepository(db),
			matches:  postgres.NewMatchRepository(db),
			messages: postgres.NewMessageRepository(db),
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// Close releases resources in reverse order of acquisition.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
