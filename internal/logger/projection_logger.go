package logger

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/scoreline/internal/models"
)

type contextKey string

// RequestIDKey carries the request ID through a context
const RequestIDKey contextKey = "request_id"

// WithRequestID returns a context carrying the request ID
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// RequestID extracts the request ID from the context, if any
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// ProjectionLogger provides dedicated logging for projection runs.
type ProjectionLogger struct {
	*logrus.Entry
}

// NewProjectionLogger creates a new projection logger.
func NewProjectionLogger(baseLogger *logrus.Logger) *ProjectionLogger {
	return &ProjectionLogger{
		Entry: baseLogger.WithField("component", "projection"),
	}
}

// ForContext attaches the request ID of ctx, when present
func (pl *ProjectionLogger) ForContext(ctx context.Context) *ProjectionLogger {
	id := RequestID(ctx)
	if id == "" {
		return pl
	}
	return &ProjectionLogger{Entry: pl.WithField("request_id", id)}
}

// LogProjection logs a completed projection.
func (pl *ProjectionLogger) LogProjection(p *models.Projection, durationMs float64) {
	pl.WithFields(logrus.Fields{
		"event_id":    p.EventID,
		"path":        string(p.Path),
		"lambda_home": p.Rates.Home,
		"lambda_away": p.Rates.Away,
		"mu":          p.Mu,
		"markets":     len(p.Markets),
		"fallbacks":   len(p.Fallbacks),
		"duration_ms": durationMs,
	}).Info("Projection completed")
}

// LogRootFallback logs a bisection that could not bracket its root.
func (pl *ProjectionLogger) LogRootFallback(eventID string, err *models.RootNotBracketedError, fallback float64) {
	pl.WithFields(logrus.Fields{
		"event_id":       eventID,
		"solver":         err.Component,
		"bracket_low":    err.Low,
		"bracket_high":   err.High,
		"fallback_value": fallback,
	}).Warn("Root not bracketed, using fallback")
}

// LogSkippedMarket logs a market dropped for unusable prices.
func (pl *ProjectionLogger) LogSkippedMarket(eventID, market string, err error) {
	pl.WithFields(logrus.Fields{
		"event_id": eventID,
		"market":   market,
		"error":    err.Error(),
	}).Debug("Market skipped")
}

// LogInsufficientData logs an event with no usable evidence.
func (pl *ProjectionLogger) LogInsufficientData(eventID, reason string) {
	pl.WithFields(logrus.Fields{
		"event_id": eventID,
		"reason":   reason,
	}).Info("Insufficient market data, no projection")
}
