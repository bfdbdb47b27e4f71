package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bengobox/time-service/internal/httpapi/middleware"
)

func serveWithRequestID(t *testing.T, header string) (string, string) {
	t.Helper()
	var seen string
	h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(middleware.RequestIDHeader, header)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	return seen, rr.Header().Get(middleware.RequestIDHeader)
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	seen, header := serveWithRequestID(t, "")

	assert.Equal(t, seen, header)
	_, err := uuid.Parse(header)
	assert.NoError(t, err)
}

func TestRequestID_UsesClientProvidedID(t *testing.T) {
	seen, header := serveWithRequestID(t, "client-id-123")

	assert.Equal(t, "client-id-123", seen)
	assert.Equal(t, "client-id-123", header)
}

func TestRequestID_ReplacesOversizedID(t *testing.T) {
	long := strings.Repeat("x", 500)
	seen, header := serveWithRequestID(t, long)

	assert.NotEqual(t, long, seen)
	assert.Equal(t, seen, header)
	assert.Len(t, seen, 36)
}

func TestRequestID_DistinctPerRequest(t *testing.T) {
	first, _ := serveWithRequestID(t, "")
	second, _ := serveWithRequestID(t, "")
	assert.NotEqual(t, first, second)
}

func TestGetRequestID_EmptyWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, middleware.GetRequestID(req.Context()))
}
