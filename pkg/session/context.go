package session

import "context"

type ctxKey struct{}

// ToContext stores the session in the context.
func ToContext(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, session)
}

// FromContext retrieves the session injected by the middleware, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(ctxKey{}).(*Session)
	return session, ok && session != nil
}
