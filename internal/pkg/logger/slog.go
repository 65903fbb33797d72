package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// serviceName is stamped on every record so log aggregation can separate
// this service from the rest of the booking stack.
const serviceName = "flight-offer-service"

// StackTraceHandler is a handler that adds stack trace to error records
// and extracts request_id from context
type StackTraceHandler struct {
	slog.Handler
}

func (h *StackTraceHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
			r.AddAttrs(slog.String("request_id", reqID))
		}
	}

	if r.Level >= slog.LevelError {
		buf := make([]byte, 4096)
		n := runtime.Stack(buf, false)
		r.AddAttrs(slog.String("stack_trace", string(buf[:n])))
	}
	return h.Handler.Handle(ctx, r)
}

// NewHandler builds the JSON handler with the service attribute, request-id
// extraction and error stack traces.
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	if level.Level() == slog.LevelDebug {
		opts.AddSource = true
	}

	jsonHandler := slog.NewJSONHandler(w, opts).
		WithAttrs([]slog.Attr{slog.String("service", serviceName)})

	return &StackTraceHandler{Handler: jsonHandler}
}

// InitStructuredLogger initialize structured logger
func InitStructuredLogger(level slog.Leveler) {
	slog.SetDefault(slog.New(NewHandler(os.Stdout, level)))
}
