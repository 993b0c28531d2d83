package http

import (
	"github.com/gdugdh24/clinicmatch-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/clinicmatch-backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Router struct {
	authHandler       *handler.AuthHandler
	profileHandler    *handler.ProfileHandler
	feedHandler       *handler.FeedHandler
	swipeHandler      *handler.SwipeHandler
	matchHandler      *handler.MatchHandler
	suggestionHandler *handler.SuggestionHandler
	catalogHandler    *handler.CatalogHandler
	authMiddleware    *middleware.AuthMiddleware
	logger            *zap.Logger
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	feedHandler *handler.FeedHandler,
	swipeHandler *handler.SwipeHandler,
	matchHandler *handler.MatchHandler,
	suggestionHandler *handler.SuggestionHandler,
	catalogHandler *handler.CatalogHandler,
	authMiddleware *middleware.AuthMiddleware,
	logger *zap.Logger,
) *Router {
	return &Router{
		authHandler:       authHandler,
		profileHandler:    profileHandler,
		feedHandler:       feedHandler,
		swipeHandler:      swipeHandler,
		matchHandler:      matchHandler,
		suggestionHandler: suggestionHandler,
		catalogHandler:    catalogHandler,
		authMiddleware:    authMiddleware,
		logger:            logger,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(r.logger))

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Catalog (public)
		v1.GET("/catalog/domains", r.catalogHandler.ListDomains)

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.PUT("/me", r.profileHandler.UpdateMyProfile)
				profile.GET("/me/completion", r.profileHandler.GetMyCompletion)
				profile.GET("/:id", r.profileHandler.GetProfile)
			}

			protected.GET("/feed", r.feedHandler.GetFeed)
			protected.POST("/swipe", r.swipeHandler.CreateSwipe)

			matches := protected.Group("/matches")
			{
				matches.GET("", r.matchHandler.ListMatches)
				matches.POST("/:id/close", r.matchHandler.CloseMatch)
				matches.GET("/:id/messages", r.matchHandler.ListMessages)
				matches.POST("/:id/messages", r.matchHandler.SendMessage)
			}

			protected.POST("/ai/suggestions", r.suggestionHandler.Generate)
		}
	}

	return router
}
