package handler

import (
	"errors"
	"net/http"

	"github.com/gdugdh24/clinicmatch-backend/internal/usecase/feed"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FeedHandler struct {
	feedUseCase *feed.FeedUseCase
	logger      *zap.Logger
}

func NewFeedHandler(feedUseCase *feed.FeedUseCase, logger *zap.Logger) *FeedHandler {
	return &FeedHandler{
		feedUseCase: feedUseCase,
		logger:      logger,
	}
}

type feedQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=0"`
}

// GetFeed handles GET /feed
// @Summary Discovery feed
// @Description Candidates of the opposite role the viewer has not decided on yet
// @Tags feed
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size, capped at 50"
// @Success 200 {object} feed.FeedResponse
// @Failure 409 {object} ErrorResponse "profile incomplete"
// @Router /feed [get]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var q feedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	result, err := h.feedUseCase.GetFeed(c.Request.Context(), session.ProfileID, q.Limit)
	if err != nil {
		var incomplete *feed.IncompleteProfileError
		if errors.As(err, &incomplete) {
			c.JSON(http.StatusConflict, ErrorResponse{
				Error:   "complete your profile to browse the feed",
				Code:    "profile_incomplete",
				Missing: incomplete.Completion.MissingRequiredFields,
			})
			return
		}
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
