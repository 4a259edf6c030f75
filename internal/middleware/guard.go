package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/skybook/skybook-web/internal/guard"
	"github.com/skybook/skybook-web/pkg/logger"
	"github.com/skybook/skybook-web/pkg/metrics"
)

// DecisionSource yields the current guard decision.
type DecisionSource interface {
	Decision() guard.Decision
}

// Protected renders the wrapped page only when the guard allows it. While
// the session is still loading it answers 202 with no page content.
func Protected(g DecisionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := g.Decision()
		metrics.GuardDecisions.WithLabelValues(decision.Kind.String()).Inc()

		switch decision.Kind {
		case guard.Loading:
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusAccepted, gin.H{"status": "loading"})
		case guard.Redirect:
			logger.Debug("Guard redirected request",
				zap.String("path", c.Request.URL.Path),
				zap.String("target", decision.Target))
			c.Redirect(http.StatusFound, decision.Target)
			c.Abort()
		default:
			c.Next()
		}
	}
}
