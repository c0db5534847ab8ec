package auth

import "context"

type contextKey struct{}

// Session describes the authenticated caller. There are no per-user accounts;
// a valid session means the shared passphrase was presented.
type Session struct {
	SessionID int64
	Token     string
}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(contextKey{}).(Session)
	return s, ok
}

// IsAuthorized reports whether the context carries a validated session.
func IsAuthorized(ctx context.Context) bool {
	_, ok := FromContext(ctx)
	return ok
}
