package sessions

import "context"

type ctxKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}

// IsAdmin es un atajo para handlers y adapters: sin sesión => false.
func IsAdmin(ctx context.Context) bool {
	s, ok := FromContext(ctx)
	return ok && s.IsAdmin()
}
