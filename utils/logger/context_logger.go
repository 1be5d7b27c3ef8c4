package logger

import (
	"context"
	"log/slog"
)

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	OperationKey ContextKey = "operation"
)

type ContextLogger struct {
	logger *slog.Logger
}

func NewContextLogger(logger *slog.Logger) *ContextLogger {
	return &ContextLogger{logger: logger}
}

// WithContext adds context values to log entries
func (cl *ContextLogger) WithContext(ctx context.Context) *slog.Logger {
	args := make([]any, 0)

	if requestID := ctx.Value(RequestIDKey); requestID != nil {
		args = append(args, "request_id", requestID.(string))
	}

	if operation := ctx.Value(OperationKey); operation != nil {
		args = append(args, "operation", operation.(string))
	}

	return cl.logger.With(args...)
}

// SafeErrorContext logs through the package logger, tolerating the nil
// logger that unit tests leave behind.
func SafeErrorContext(ctx context.Context, msg string, args ...any) {
	if Logger == nil {
		return
	}
	Logger.ErrorContext(ctx, msg, args...)
}

// SafeInfoContext is the Info counterpart of SafeErrorContext.
func SafeInfoContext(ctx context.Context, msg string, args ...any) {
	if Logger == nil {
		return
	}
	Logger.InfoContext(ctx, msg, args...)
}
