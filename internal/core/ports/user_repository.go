package ports

import (
	"context"

	"github.com/memoboard/memoboard-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateEmail(ctx context.Context, username, email string) error
	// Delete removes a user row. Used only to roll back a registration whose
	// profile provisioning failed, so that no account exists without a profile.
	Delete(ctx context.Context, username string) error
}
