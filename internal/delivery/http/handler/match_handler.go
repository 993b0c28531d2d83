package handler

import (
	"net/http"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
	"github.com/gdugdh24/clinicmatch-backend/internal/usecase/match"
	"github.com/gdugdh24/clinicmatch-backend/internal/usecase/message"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MatchHandler struct {
	matchUseCase   *match.MatchUseCase
	messageUseCase *message.MessageUseCase
	logger         *zap.Logger
}

func NewMatchHandler(matchUseCase *match.MatchUseCase, messageUseCase *message.MessageUseCase, logger *zap.Logger) *MatchHandler {
	return &MatchHandler{
		matchUseCase:   matchUseCase,
		messageUseCase: messageUseCase,
		logger:         logger,
	}
}

// ListMatches handles GET /matches
// @Summary List my matches
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.MatchWithProfile
// @Router /matches [get]
func (h *MatchHandler) ListMatches(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	matches, err := h.matchUseCase.ListMatches(c.Request.Context(), session.ProfileID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if matches == nil {
		matches = []*domain.MatchWithProfile{}
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// CloseMatch handles POST /matches/:id/close
// @Summary Close a match
// @Description Closing is permanent; closing twice returns the closed match
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} domain.Match
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /matches/{id}/close [post]
func (h *MatchHandler) CloseMatch(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	m, err := h.matchUseCase.CloseMatch(c.Request.Context(), c.Param("id"), session.ProfileID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

type messagesQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=0"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// ListMessages handles GET /matches/:id/messages
// @Summary List messages
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param id path string true "Match ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} domain.Message
// @Router /matches/{id}/messages [get]
func (h *MatchHandler) ListMessages(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var q messagesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	messages, err := h.messageUseCase.List(c.Request.Context(), c.Param("id"), session.ProfileID, q.Limit, q.Offset)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if messages == nil {
		messages = []*domain.Message{}
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// SendMessage handles POST /matches/:id/messages
// @Summary Send a message
// @Description Only parties of an open match may write
// @Tags messages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param request body message.SendMessageRequest true "Message"
// @Success 201 {object} domain.Message
// @Failure 409 {object} ErrorResponse "match closed"
// @Router /matches/{id}/messages [post]
func (h *MatchHandler) SendMessage(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req message.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	msg, err := h.messageUseCase.Send(c.Request.Context(), c.Param("id"), session.ProfileID, req.Content)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}
