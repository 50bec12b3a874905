package httpx

import "context"

type ctxKey string

const (
	CtxKeySessionID ctxKey = "session_id"
	CtxKeyUserID    ctxKey = "user_id"
)

// WithIdentity records the session slot and user bound to the request so
// later middleware (rate limiting) and handlers can key on them.
func WithIdentity(ctx context.Context, sessionID, userID string) context.Context {
	ctx = context.WithValue(ctx, CtxKeySessionID, sessionID)
	return context.WithValue(ctx, CtxKeyUserID, userID)
}

func UserIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(CtxKeyUserID).(string)
	return v
}

func SessionIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(CtxKeySessionID).(string)
	return v
}
