package handler

import (
	"net/http"

	"github.com/gdugdh24/clinicmatch-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
	logger         *zap.Logger
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		logger:         logger,
	}
}

// GetMyProfile handles GET /profile/me
// @Summary Get my profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} profile.ProfileWithCompletion
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profile/me [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	result, err := h.profileUseCase.GetMyProfile(c.Request.Context(), session.ProfileID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateMyProfile handles PUT /profile/me
// @Summary Update my profile
// @Description Partial update; omitted fields are kept, blank strings clear a field
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.UpdateProfileRequest true "Profile update data"
// @Success 200 {object} profile.ProfileWithCompletion
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /profile/me [put]
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req profile.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	result, err := h.profileUseCase.UpdateProfile(c.Request.Context(), session.ProfileID, &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMyCompletion handles GET /profile/me/completion
func (h *ProfileHandler) GetMyCompletion(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	completion, err := h.profileUseCase.GetCompletion(c.Request.Context(), session.ProfileID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, completion)
}

// GetProfile handles GET /profile/:id
// @Summary Get a profile
// @Description Public view of another profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} domain.ProfileSummary
// @Failure 404 {object} ErrorResponse
// @Router /profile/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	if _, ok := requireSession(c); !ok {
		return
	}

	summary, err := h.profileUseCase.GetProfileSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
