package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dvesiz/Ship-Management-System/internal/common"
)

// Result is the uniform response envelope: code 0 on success, 1 on error.
// Business errors travel as HTTP 200 with code 1; only authentication and
// authorization failures use 401/403 status codes.
type Result struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Result{Code: 0, Message: "ok", Data: data})
}

// fail maps an error to the envelope and records it on the gin context so
// the audit middleware sees the outcome. Unrecognized errors get a generic
// message; the detail stays server-side.
func (s *Server) fail(c *gin.Context, err error) {
	c.Error(err)

	status := http.StatusOK
	message := err.Error()

	switch {
	case errors.Is(err, common.ErrUnauthenticated),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		status = http.StatusUnauthorized
		message = "unauthenticated"
	case errors.Is(err, common.ErrForbidden):
		status = http.StatusForbidden
		message = "forbidden"
	case errors.Is(err, common.ErrorNotFound),
		errors.Is(err, common.ErrorValidation),
		errors.Is(err, common.ErrorConflict),
		errors.Is(err, common.ErrCodeMismatch),
		errors.Is(err, common.ErrTooFrequent),
		errors.Is(err, common.ErrExternalVerification):
		// business error, stable sentinel message
	default:
		s.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		message = "service busy, try again later"
	}

	c.JSON(status, Result{Code: 1, Message: message})
}

func (s *Server) failValidation(c *gin.Context, err error) {
	c.Error(err)
	c.JSON(http.StatusOK, Result{Code: 1, Message: common.ErrorValidation.Error()})
}
