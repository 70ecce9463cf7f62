package logging

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
)

type requestIDKey struct{}

// New builds the root logger and installs it as the hclog default so
// packages without an injected logger share the same output.
func New(name, level string, out io.Writer) hclog.Logger {
	l := hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  hclog.LevelFromString(level),
		Output: out,
	})
	hclog.SetDefault(l)
	return l
}

// WithRequestID stores the request ID in ctx for FromContext.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID extracts the request ID from ctx, or "" when none was set.
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger tags every line with the request it belongs to.
type Logger struct {
	l hclog.Logger
}

// FromContext creates a logger with request context
func FromContext(ctx context.Context) *Logger {
	requestID := RequestID(ctx)
	if requestID == "" {
		requestID = "unknown"
	}
	return &Logger{l: hclog.Default().With("request_id", requestID)}
}

func (l *Logger) LogError(operation string, err error) {
	l.l.Error("operation failed", "operation", operation, "error", err)
}

func (l *Logger) LogWarnf(operation string, format string, args ...interface{}) {
	l.l.Warn(fmt.Sprintf(format, args...), "operation", operation)
}

func (l *Logger) LogDebugf(operation string, format string, args ...interface{}) {
	l.l.Debug(fmt.Sprintf(format, args...), "operation", operation)
}
