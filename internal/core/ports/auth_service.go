package ports

import (
	"context"

	"github.com/memoboard/memoboard-api/internal/core/domain"
)

// AuthService defines registration and session management.
//
// Register creates the account AND its profile in one synchronous sequence:
// a successful return guarantees the profile exists with a non-empty avatar.
// The returned token is a live session, matching the "signed up users are
// logged in" behaviour of the board.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Logout(ctx context.Context, jti string) error
}
