package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/project-relay/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const HeaderRequestID = "X-Request-Id"

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "project_relay",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Inbound HTTP requests by method, route and status.",
}, []string{"method", "route", "status"})

// RequestIDMiddleware ensures every request has a stable request ID.
// - Reads X-Request-Id header if present
// - Otherwise generates a new one
// - Stores it in both Gin context and the request context as "request_id"
// - Echoes it back in response header X-Request-Id
// - Logs method, path, status and latency once the handler returns
func RequestIDMiddleware(logger hclog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if strings.TrimSpace(rid) == "" {
			rid = uuid.NewString()
		}

		c.Set("request_id", rid)
		c.Request = c.Request.WithContext(logging.WithRequestID(c.Request.Context(), rid))
		c.Writer.Header().Set(HeaderRequestID, rid)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()

		logger.Info("request",
			"request_id", rid,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
		)
	}
}
