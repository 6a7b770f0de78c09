package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jwilson717/Expenser-AccountsService/internal/apperr"
)

// ExceptionResponse is the error body for every failed request.
type ExceptionResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
}

// respondError maps a service failure to its HTTP status and writes the
// standard error body. Unknown error values are treated as processing
// faults; no failure kind is ever downgraded on the way out.
func respondError(c *gin.Context, err error) {
	appErr := asAppError(err)
	status := statusFor(appErr.Kind)
	slog.Error("request error", "error", appErr.Name, "message", appErr.Message, "status", status)
	c.JSON(status, ExceptionResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     appErr.Name,
		Message:   appErr.Message,
	})
}

func asAppError(err error) *apperr.Error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperr.Processing("")
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindBadValue:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
