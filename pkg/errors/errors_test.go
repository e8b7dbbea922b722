package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorStatusCodes(t *testing.T) {
	tests := []struct {
		err    *AppError
		code   string
		status int
	}{
		{NotFound("Order", nil), "NOT_FOUND", http.StatusNotFound},
		{BadRequest("bad input", nil), "BAD_REQUEST", http.StatusBadRequest},
		{SourceUnavailable("case queue", fmt.Errorf("timeout")), "SOURCE_UNAVAILABLE", http.StatusServiceUnavailable},
		{InvalidTransition("approve is not legal from open"), "INVALID_TRANSITION", http.StatusUnprocessableEntity},
		{CaseClosed("dispute:order-1"), "CASE_CLOSED", http.StatusConflict},
		{ConcurrentModification("seller seller-1"), "CONCURRENT_MODIFICATION", http.StatusConflict},
		{TooManyRequests("slow down"), "TOO_MANY_REQUESTS", http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.Status)
		})
	}
}

func TestIsMatchesWrappedAppError(t *testing.T) {
	base := NotFound("Seller", nil)
	wrapped := fmt.Errorf("loading case: %w", base)

	assert.True(t, Is(wrapped, "NOT_FOUND"))
	assert.False(t, Is(wrapped, "BAD_REQUEST"))
	assert.False(t, Is(fmt.Errorf("plain"), "NOT_FOUND"))
	assert.False(t, Is(nil, "NOT_FOUND"))
}
