package ports

import (
	"context"
	"time"
)

// SessionStore tracks live login sessions keyed by token ID (jti). A token
// whose session is absent — expired or revoked by logout — is not accepted
// by the auth guard even if its signature is still valid.
type SessionStore interface {
	Create(ctx context.Context, jti, username string, ttl time.Duration) error
	Exists(ctx context.Context, jti string) (bool, error)
	Delete(ctx context.Context, jti string) error
}
