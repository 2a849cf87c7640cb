package middleware

import "context"

// Define a key type for context values to avoid collisions
type contextKey string

const (
	// RequestIDKey is the key used to store the request id in the request context
	RequestIDKey contextKey = "requestID"
	// VisitorIDKey is the key used to store the navigation visitor id
	VisitorIDKey contextKey = "visitorID"
)

// RequestID returns the id assigned to the request by RequestLogger.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// VisitorID returns the navigation visitor id set by TrackNavigation.
func VisitorID(ctx context.Context) string {
	id, _ := ctx.Value(VisitorIDKey).(string)
	return id
}
