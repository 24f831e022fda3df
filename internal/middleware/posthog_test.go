package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/biz_records_app/internal/middleware"
	"github.com/SscSPs/biz_records_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/posthog/posthog-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	events []posthog.Capture
	closed bool
}

func (s *recordingSink) Enqueue(msg posthog.Message) error {
	if capture, ok := msg.(posthog.Capture); ok {
		s.events = append(s.events, capture)
	}
	return nil
}

func (s *recordingSink) Close() error {
	s.closed = true
	return nil
}

func newTrackedRouter(tracker *utils.PosthogClientWrapper) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.PosthogMiddleware(tracker))
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "OK") })
	r.GET("/api/assets", func(c *gin.Context) { c.String(http.StatusOK, "[]") })
	r.GET("/api/customers/:id", middleware.AuthMiddleware(testSecret), middleware.RequireSelf("id"), func(c *gin.Context) {
		c.String(http.StatusOK, "me")
	})
	return r
}

func serve(r *gin.Engine, path, token string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestPosthogMiddleware_TracksAuthenticatedSuccess(t *testing.T) {
	sink := &recordingSink{}
	router := newTrackedRouter(utils.NewPosthogClientWrapper(sink, slog.Default()))

	assert.Equal(t, http.StatusOK, serve(router, "/api/customers/c1", tokenFor(t, "c1", time.Hour)))

	require.Len(t, sink.events, 1)
	event := sink.events[0]
	assert.Equal(t, "c1", event.DistinctId)
	assert.Equal(t, "api_customers_:id", event.Event)
	assert.Equal(t, http.MethodGet, event.Properties["method"])
	assert.Equal(t, map[string]string{"id": "c1"}, event.Properties["params"])
}

func TestPosthogMiddleware_SkipsUntrackedRequests(t *testing.T) {
	sink := &recordingSink{}
	router := newTrackedRouter(utils.NewPosthogClientWrapper(sink, slog.Default()))

	assert.Equal(t, http.StatusOK, serve(router, "/health", ""))
	assert.Equal(t, http.StatusOK, serve(router, "/api/assets", ""))
	assert.Equal(t, http.StatusForbidden, serve(router, "/api/customers/c1", tokenFor(t, "c2", time.Hour)))
	assert.Equal(t, http.StatusUnauthorized, serve(router, "/api/customers/c1", ""))

	assert.Empty(t, sink.events)
}

func TestPosthogMiddleware_DisabledTracker(t *testing.T) {
	tracker := utils.InitializePosthogClient("", "", slog.Default())
	assert.False(t, tracker.IsInitialized())
	assert.NoError(t, tracker.Close())

	router := newTrackedRouter(tracker)
	assert.Equal(t, http.StatusOK, serve(router, "/api/customers/c1", tokenFor(t, "c1", time.Hour)))
}

func TestPosthogClientWrapper_CloseFlushesSink(t *testing.T) {
	sink := &recordingSink{}
	tracker := utils.NewPosthogClientWrapper(sink, nil)
	tracker.Enqueue("c1", "api_dashboard_summary", nil)

	require.NoError(t, tracker.Close())
	assert.True(t, sink.closed)
	assert.Len(t, sink.events, 1)
}
