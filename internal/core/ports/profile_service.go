package ports

import (
	"context"
	"io"
	"time"
)

// AvatarUpload is a replacement avatar image submitted with a profile update.
type AvatarUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// ProfileUpdateInput carries the editable account fields. Email mirrors the
// account form, which updates the user row alongside the profile row.
type ProfileUpdateInput struct {
	Bio         string
	PhoneNumber string
	Email       string
	Avatar      *AvatarUpload
}

// ProfileView is the read model for both the public profile page and the
// owner's account page.
type ProfileView struct {
	Username    string
	AvatarURL   string
	Bio         string
	PhoneNumber string
	Email       string
	CreatedAt   time.Time
}

// ProfileService provisions, updates and serves profiles.
type ProfileService interface {
	// Provision creates the one-and-only profile for a freshly registered
	// user, seeding its avatar from the default asset. It must be called
	// exactly once per user, by registration only.
	Provision(ctx context.Context, username string) error
	Update(ctx context.Context, username string, in ProfileUpdateInput) (*ProfileView, error)
	// Account returns the owner's view (includes email).
	Account(ctx context.Context, username string) (*ProfileView, error)
	// View returns the public view of any user's profile.
	View(ctx context.Context, username string) (*ProfileView, error)
}
