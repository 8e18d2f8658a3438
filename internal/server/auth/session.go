package auth

import (
	"context"
	"time"

	"github.com/Dvesiz/Ship-Management-System/internal/server/kv"
)

// SessionRegistry tracks issued tokens in the shared fast store so that
// sessions can be revoked server-side even though tokens are self-verifying.
// The entry is key=token, value=token; existence implies validity. Sessions
// are never explicitly invalidated on logout: only TTL expiry (or an
// administrative wipe of the namespace) ends them.
type SessionRegistry struct {
	store kv.Store
	ttl   time.Duration
}

func NewSessionRegistry(store kv.Store, ttl time.Duration) *SessionRegistry {
	return &SessionRegistry{store: store, ttl: ttl}
}

// Put registers token as an active session with the configured TTL.
func (r *SessionRegistry) Put(ctx context.Context, token string) error {
	return r.store.Set(ctx, token, token, r.ttl)
}

// IsActive reports whether token is present in the registry. A structurally
// valid, unexpired token that is absent here must be rejected.
func (r *SessionRegistry) IsActive(ctx context.Context, token string) (bool, error) {
	return r.store.Exists(ctx, token)
}

// Revoke removes token from the registry ahead of its natural expiry.
func (r *SessionRegistry) Revoke(ctx context.Context, token string) error {
	return r.store.Delete(ctx, token)
}
