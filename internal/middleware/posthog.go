package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/biz_records_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that are never tracked
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware records a usage event for every successful request made
// by an authenticated customer. The event name is the route pattern, e.g.
// "/api/customers/:id" -> "api_customers_:id".
func PosthogMiddleware(tracker *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !tracker.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		customerID, exists := GetCustomerIDFromContext(c)
		if !exists {
			return
		}

		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		tracker.Enqueue(customerID, eventName, props)
	}
}
