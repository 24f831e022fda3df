package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/biz_records_app/internal/middleware"
	"github.com/SscSPs/biz_records_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/customers/:id", middleware.AuthMiddleware(testSecret), middleware.RequireSelf("id"), func(c *gin.Context) {
		id, _ := middleware.GetCustomerIDFromContext(c)
		c.String(http.StatusOK, id)
	})
	return r
}

func tokenFor(t *testing.T, customerID string, ttl time.Duration) string {
	t.Helper()
	token, _, err := utils.GenerateCustomerToken(customerID, "CUSTOMER", testSecret, "test", ttl, time.Now())
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	router := newAuthRouter()

	tests := []struct {
		name   string
		header string
		path   string
		status int
	}{
		{"no header", "", "/customers/c1", http.StatusUnauthorized},
		{"not bearer", "Basic abc", "/customers/c1", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", "/customers/c1", http.StatusUnauthorized},
		{"expired token", "Bearer " + tokenFor(t, "c1", -time.Minute), "/customers/c1", http.StatusUnauthorized},
		{"other customer", "Bearer " + tokenFor(t, "c2", time.Hour), "/customers/c1", http.StatusForbidden},
		{"own record", "Bearer " + tokenFor(t, "c1", time.Hour), "/customers/c1", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "c1", w.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_RejectsWrongSecret(t *testing.T) {
	token, _, err := utils.GenerateCustomerToken("c1", "CUSTOMER", "another-secret", "test", time.Hour, time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/customers/c1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	newAuthRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim, err := middleware.NewMemoryLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.POST("/login", middleware.RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for range 3 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	_, err = middleware.NewMemoryLimiter("lots")
	assert.Error(t, err)
}

func TestRequestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestTimeout(50 * time.Millisecond))
	r.GET("/", func(c *gin.Context) {
		_, hasDeadline := c.Request.Context().Deadline()
		assert.True(t, hasDeadline)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.NotNil(t, middleware.GetLoggerFromCtx(req.Context()))
}
