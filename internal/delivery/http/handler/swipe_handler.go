package handler

import (
	"net/http"

	"github.com/gdugdh24/clinicmatch-backend/internal/usecase/swipe"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SwipeHandler struct {
	swipeUseCase *swipe.SwipeUseCase
	logger       *zap.Logger
}

func NewSwipeHandler(swipeUseCase *swipe.SwipeUseCase, logger *zap.Logger) *SwipeHandler {
	return &SwipeHandler{
		swipeUseCase: swipeUseCase,
		logger:       logger,
	}
}

// CreateSwipe handles POST /swipe
// @Summary Swipe on a profile
// @Description Record LIKE or PASS; a mutual like creates the match
// @Tags swipe
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body swipe.SwipeRequest true "Swipe"
// @Success 200 {object} swipe.SwipeResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /swipe [post]
func (h *SwipeHandler) CreateSwipe(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req swipe.SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	result, err := h.swipeUseCase.RecordSwipe(c.Request.Context(), session.ProfileID, req.SwipedID, req.Type)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
