package middleware_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/api/middleware"
	"github.com/stretchr/testify/assert"
)

func TestLogging(t *testing.T) {
	t.Run("Propagates request id and status", func(t *testing.T) {
		var logger *slog.Logger
		handler := middleware.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger = middleware.LoggerFromContext(r.Context())
			w.WriteHeader(http.StatusAccepted)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "req-123")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusAccepted, rr.Code)
		assert.Equal(t, "req-123", rr.Header().Get("X-Request-ID"))
		assert.NotNil(t, logger)
		assert.NotSame(t, slog.Default(), logger)
	})

	t.Run("Generates a request id when missing", func(t *testing.T) {
		handler := middleware.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, rr.Header().Get("X-Request-ID"), 36)
	})
}

func TestLoggerFromContext_Default(t *testing.T) {
	assert.Same(t, slog.Default(), middleware.LoggerFromContext(context.Background()))
}
