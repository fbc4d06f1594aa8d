package authdomain

import "context"

type identityKey struct{}

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, identityKey{}, userID)
}

// UserIDFromContext returns the authenticated user id, if the request passed
// token verification.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(identityKey{}).(int64)
	return id, ok
}
