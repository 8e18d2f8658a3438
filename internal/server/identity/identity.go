// Package identity carries the verified caller identity for the duration of
// one inbound request. It is resolved once by the auth middleware and passed
// through the request's context.Context; there is no process-wide state, so
// concurrent requests can never observe each other's identity.
package identity

import (
	"context"

	"github.com/Dvesiz/Ship-Management-System/internal/common"
	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
)

type ctxKey struct{}

// Identity is the verified caller of the current request.
type Identity struct {
	UserID   int64
	Username string
	Role     models.Role
}

// Anonymous is the sentinel identity used by best-effort consumers (the audit
// interceptor) when no identity could be resolved.
var Anonymous = Identity{UserID: 0, Username: "anonymous", Role: models.RoleUser}

// WithIdentity returns a child context carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the identity attached to ctx, or
// common.ErrUnauthenticated if the request carries none.
func FromContext(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	if !ok {
		return Identity{}, common.ErrUnauthenticated
	}
	return id, nil
}

// RequireAdmin returns the identity if it carries the ADMIN role. A missing
// identity maps to common.ErrUnauthenticated, a role mismatch to
// common.ErrForbidden. This single check is the entire authorization model.
func RequireAdmin(ctx context.Context) (Identity, error) {
	id, err := FromContext(ctx)
	if err != nil {
		return Identity{}, err
	}
	if id.Role != models.RoleAdmin {
		return Identity{}, common.ErrForbidden
	}
	return id, nil
}
