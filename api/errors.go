package api

import (
	"net/http"
	"time"

	"meet-lab/domain"
	"meet-lab/errors"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type redirect struct {
	To      domain.View `json:"to"`
	AfterMs int64       `json:"afterMs"`
}

func toRedirect(nav domain.Navigation) *redirect {
	if !nav.Required() {
		return nil
	}
	return &redirect{To: nav.To, AfterMs: nav.After.Milliseconds()}
}

// statusOf maps domain errors to HTTP statuses.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errors.ErrValidation),
		errors.Is(err, errors.ErrEmptyMessage),
		errors.Is(err, errors.ErrUnknownAction):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errors.ErrMeetingNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrSubmitInProgress):
		return http.StatusConflict
	case errors.Is(err, errors.ErrMeetingEnded):
		return http.StatusGone
	case errors.Is(err, errors.ErrSimulatedTransientFailure):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	status := statusOf(err)
	response := errorResponse{Error: err.Error()}

	var validation errors.ValidationError
	if errors.As(err, &validation) {
		response.Field = validation.Field
	}
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		response.Error = "internal error"
	}
	c.JSON(status, response)
}

func writeTimeout(c *gin.Context, waited time.Duration) {
	c.JSON(http.StatusGatewayTimeout, errorResponse{Error: "submission did not settle within " + waited.String()})
}
