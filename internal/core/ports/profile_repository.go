package ports

import (
	"context"

	"github.com/memoboard/memoboard-api/internal/core/domain"
)

// ProfileRepository defines persistence operations for profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	FindByUsername(ctx context.Context, username string) (*domain.Profile, error)
	// Update persists avatar key, bio and phone number as a single write.
	// Returns domain.ErrProfileNotFound when no row matched.
	Update(ctx context.Context, profile *domain.Profile) error
}
