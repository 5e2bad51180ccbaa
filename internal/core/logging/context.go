package logging

import "context"

type contextKey string

const (
	weddingIDKey contextKey = "wedding_id"
	requestIDKey contextKey = "request_id"
)

// WithWeddingID adds a wedding ID to the context.
func WithWeddingID(ctx context.Context, weddingID string) context.Context {
	return context.WithValue(ctx, weddingIDKey, weddingID)
}

// WithRequestID adds an HTTP request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetWeddingID retrieves the wedding ID from the context.
// Returns empty string if not present.
func GetWeddingID(ctx context.Context) string {
	if id, ok := ctx.Value(weddingIDKey).(string); ok {
		return id
	}
	return ""
}

// GetRequestID retrieves the request ID from the context.
// Returns empty string if not present.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
