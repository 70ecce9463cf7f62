package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GoSim-25-26J-441/project-relay/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/project-relay/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(buf *bytes.Buffer) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)

	logger := hclog.New(&hclog.LoggerOptions{Output: buf, Level: hclog.Info})
	var seen string

	router := gin.New()
	router.Use(middleware.RequestIDMiddleware(logger))
	router.GET("/ping", func(c *gin.Context) {
		seen = logging.RequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})
	return router, &seen
}

func TestRequestIDMiddleware_Generates(t *testing.T) {
	var buf bytes.Buffer
	router, seen := setupRouter(&buf)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	rid := rr.Header().Get(middleware.HeaderRequestID)
	_, err := uuid.Parse(rid)
	require.NoError(t, err)
	assert.Equal(t, rid, *seen)
	assert.Contains(t, buf.String(), "request_id="+rid)
	assert.Contains(t, buf.String(), "status=204")
}

func TestRequestIDMiddleware_PreservesIncoming(t *testing.T) {
	var buf bytes.Buffer
	router, seen := setupRouter(&buf)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.HeaderRequestID, "caller-supplied")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "caller-supplied", rr.Header().Get(middleware.HeaderRequestID))
	assert.Equal(t, "caller-supplied", *seen)
}
