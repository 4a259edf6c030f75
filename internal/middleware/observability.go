package middleware

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/skybook/skybook-web/pkg/logger"
	"github.com/skybook/skybook-web/pkg/metrics"
	"github.com/skybook/skybook-web/pkg/profiling"
)

// sensitiveFields are redacted from logs to avoid leaking credentials.
var sensitiveFields = map[string]bool{
	"token": true, "password": true, "confirmpassword": true,
	"cvv": true, "number": true,
}

// ObservabilityMiddleware instruments page requests with metrics and logging
func ObservabilityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		// Routing has already happened, so FullPath is the route template
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.ActiveRequests.WithLabelValues(method, route).Inc()
		defer metrics.ActiveRequests.WithLabelValues(method, route).Dec()

		profiling.WithRoute(c.Request.Context(), route, func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})

		duration := metrics.MeasureDuration(start)
		status := c.Writer.Status()
		statusStr := strconv.Itoa(status)

		metrics.HTTPRequestDuration.WithLabelValues(method, route, statusStr).Observe(duration)
		metrics.HTTPRequestTotal.WithLabelValues(method, route, statusStr).Inc()

		fields := []zap.Field{
			zap.String("route", route),
			zap.Int("response_size", c.Writer.Size()),
		}
		if location := c.Writer.Header().Get("Location"); location != "" {
			fields = append(fields, zap.String("redirect", location))
		}

		if status >= 400 {
			if len(c.Params) > 0 {
				params := make(map[string]string, len(c.Params))
				for _, p := range c.Params {
					params[p.Key] = p.Value
				}
				fields = append(fields, zap.Any("route_params", params))
			}

			if query := c.Request.URL.Query(); len(query) > 0 {
				sanitized := make(map[string]string, len(query))
				for k, v := range query {
					if !sensitiveFields[strings.ToLower(k)] && len(v) > 0 {
						sanitized[k] = v[0]
					}
				}
				if len(sanitized) > 0 {
					fields = append(fields, zap.Any("query_params", sanitized))
				}
			}

			if len(c.Errors) > 0 {
				fields = append(fields, zap.String("error", c.Errors.String()))
			}
		}

		logger.LogHTTPRequest(method, c.Request.URL.Path, status, duration, fields...)
	}
}
