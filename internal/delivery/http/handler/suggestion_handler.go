package handler

import (
	"net/http"

	"github.com/gdugdh24/clinicmatch-backend/internal/usecase/suggest"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SuggestionHandler struct {
	suggestUseCase *suggest.SuggestUseCase
	logger         *zap.Logger
}

func NewSuggestionHandler(suggestUseCase *suggest.SuggestUseCase, logger *zap.Logger) *SuggestionHandler {
	return &SuggestionHandler{
		suggestUseCase: suggestUseCase,
		logger:         logger,
	}
}

// Generate handles POST /ai/suggestions
// @Summary Generate text suggestions
// @Description Bio drafts, screening questions or icebreakers. Falls back to templates when AI is unavailable.
// @Tags ai
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body suggest.SuggestionRequest true "Suggestion request"
// @Success 200 {object} suggest.SuggestionResponse
// @Router /ai/suggestions [post]
func (h *SuggestionHandler) Generate(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req suggest.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	result, err := h.suggestUseCase.Generate(c.Request.Context(), session.ProfileID, &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
