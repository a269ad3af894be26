// Package logger provides the structured, context-aware logging used across the backend.
// Implementations attach the request id carried by the context (see WithRequestID).
package logger

import "context"

// Logger is a leveled structured logger.
type Logger interface {
	Debug(ctx context.Context, msg string, fields map[string]interface{})
	Info(ctx context.Context, msg string, fields map[string]interface{})
	Warn(ctx context.Context, msg string, fields map[string]interface{})
	Error(ctx context.Context, msg string, fields map[string]interface{})

	// WithField returns a logger that adds key=value to every entry.
	WithField(key string, value interface{}) Logger

	// WithFields returns a logger that adds fields to every entry.
	WithFields(fields map[string]interface{}) Logger
}
