package commons

import "context"

type contextKey string

const userIDKey contextKey = "userId"

// WithUserID stores the authenticated caller's id, forwarded by the upstream
// gateway, into the request context.
func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFrom(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userIDKey).(uint)
	return id, ok
}
