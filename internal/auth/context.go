package auth

import "context"

type contextKey string

const userIDKey contextKey = "user_id"

// WithUserID attaches the acting user to ctx. Writers record it where the
// schema keeps a user name.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID returns the acting user, or "" when none was attached.
func GetUserID(ctx context.Context) string {
	if val, ok := ctx.Value(userIDKey).(string); ok {
		return val
	}
	return ""
}
