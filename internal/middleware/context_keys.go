package middleware

import "github.com/gin-gonic/gin"

// contextKey is the type of keys this package stores in request contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey  = contextKey("logger")
	customerIDKey = contextKey("customerID")
)

// GetCustomerIDFromContext retrieves the authenticated customer ID from the Gin context.
// It returns the ID and a boolean indicating if it was found.
func GetCustomerIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(customerIDKey)); exists {
		id, ok := v.(string)
		return id, ok
	}
	// check in the request context as well
	if v, ok := c.Request.Context().Value(customerIDKey).(string); ok {
		return v, true
	}
	return "", false
}
