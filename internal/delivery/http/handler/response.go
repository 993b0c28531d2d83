package handler

import (
	"errors"
	"net/http"

	"github.com/gdugdh24/clinicmatch-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Fields  map[string]string `json:"fields,omitempty"`
	Missing []string          `json:"missing_required_fields,omitempty"`
}

// SuccessResponse represents success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// statusFor maps an error category to its HTTP status and stable code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "validation_failed"
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthenticated"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrProfileIncomplete):
		return http.StatusConflict, "profile_incomplete"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "store_unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func writeError(c *gin.Context, logger *zap.Logger, err error) {
	status, code := statusFor(err)
	resp := ErrorResponse{Error: err.Error(), Code: code}

	var fields domain.ValidationErrors
	if errors.As(err, &fields) {
		resp.Fields = fields
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Int("status", status),
			zap.Error(err),
		)
		if status == http.StatusInternalServerError {
			resp.Error = "internal error"
		}
	}

	c.AbortWithStatusJSON(status, resp)
}

// writeBindError reports a malformed or invalid request body.
func writeBindError(c *gin.Context, err error) {
	resp := ErrorResponse{Error: "invalid request body", Code: "validation_failed"}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		resp.Fields = make(map[string]string, len(verrs))
		for _, fe := range verrs {
			resp.Fields[fe.Field()] = fe.Tag()
		}
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, resp)
}

// currentSession returns the session stored by the auth middleware.
func currentSession(c *gin.Context) (*domain.Session, bool) {
	v, ok := c.Get(middleware.SessionKey)
	if !ok {
		return nil, false
	}
	session, ok := v.(*domain.Session)
	return session, ok && session != nil
}

func requireSession(c *gin.Context) (*domain.Session, bool) {
	session, ok := currentSession(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Code: "unauthenticated"})
		return nil, false
	}
	return session, true
}
