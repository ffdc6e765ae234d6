package httpx

import "context"

// Identity is the authenticated caller extracted from the bearer token. The
// dashboard trusts it for audit attribution and role filtering.
type Identity struct {
	ID   string
	Name string
	Role string
}

type ctxKey string

const ctxKeyIdentity ctxKey = "identity"

func contextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, id)
}

// IdentityFromContext returns the authenticated identity, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKeyIdentity).(Identity)
	return id, ok
}
