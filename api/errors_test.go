package api

import (
	"fmt"
	"net/http"
	"testing"

	"meet-lab/errors"

	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", errors.NewValidationError("Email", "Please enter a valid email address"), http.StatusBadRequest},
		{"login failure", errors.NewSimulatedFailure("Invalid email or password"), http.StatusServiceUnavailable},
		{"signup failure", errors.NewSimulatedFailure("An error occurred. Please try again."), http.StatusServiceUnavailable},
		{"in progress", errors.ErrSubmitInProgress, http.StatusConflict},
		{"ended", fmt.Errorf("join: %w", errors.ErrMeetingEnded), http.StatusGone},
		{"unknown", fmt.Errorf("disk full"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, statusOf(tt.err))
		})
	}
}
