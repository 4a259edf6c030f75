package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/skybook/skybook-web/internal/navigation"
)

// NavigationMiddleware gives every request its own navigation recorder, so
// "navigate to" requests made while handling it become its redirect.
func NavigationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rec := navigation.NewRecorder()
		c.Request = c.Request.WithContext(navigation.WithNavigator(c.Request.Context(), rec))
		c.Next()
	}
}
