package domain

import "context"

type principalKey struct{}

// WithPrincipal binds the principal to ctx. Each request carries its own
// context value; there is deliberately no process-wide current user.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the bound principal, if any.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
