package domain

import (
	"context"
	"log/slog"
)

type contextKey string

const loggerContextKey contextKey = "logger"

func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := ctx.Value(loggerContextKey)
	if logger == nil {
		logger = slog.Default()
	}

	return logger.(*slog.Logger)
}

const viewerContextKey contextKey = "viewer"

func ContextWithViewer(ctx context.Context, viewer Viewer) context.Context {
	return context.WithValue(ctx, viewerContextKey, viewer)
}

// ViewerFromContext returns the authenticated viewer, or the zero-value
// anonymous viewer if the request carried no credentials.
func ViewerFromContext(ctx context.Context) Viewer {
	viewer := ctx.Value(viewerContextKey)
	if viewer == nil {
		return Viewer{}
	}
	return viewer.(Viewer)
}
