package ctxutil

import (
	"context"
)

type ctxKey string

const (
	identityKey  ctxKey = "identity"
	requestIDKey ctxKey = "request_id"
)

// Identity is the authenticated caller as supplied by the identity provider.
// UserID is the provider's opaque subject.
type Identity struct {
	UserID      string
	DisplayName string
}

// WithIdentity stores the caller identity in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromCtx extracts the caller identity from the context.
// Returns false if the value is missing, has an empty subject, or has the wrong type.
func IdentityFromCtx(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok || id.UserID == "" {
		return Identity{}, false
	}
	return id, true
}

// UserIDFromCtx returns only the subject of the caller identity.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := IdentityFromCtx(ctx)
	return id.UserID, ok
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
