package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/memoboard/memoboard-api/internal/core/domain"
	"github.com/memoboard/memoboard-api/internal/core/ports"
)

// ProfileService provisions profiles on registration and handles the
// account page (owner updates) and the public profile page.
type ProfileService struct {
	profiles ports.ProfileRepository
	users    ports.UserRepository
	avatars  ports.AvatarStore
	logger   zerolog.Logger
}

func NewProfileService(
	profiles ports.ProfileRepository,
	users ports.UserRepository,
	avatars ports.AvatarStore,
	logger zerolog.Logger,
) *ProfileService {
	return &ProfileService{profiles: profiles, users: users, avatars: avatars, logger: logger}
}

// avatarKey returns the per-user object key that holds the avatar image.
// The key never changes for the lifetime of the profile; uploads overwrite it.
func avatarKey(username string) string {
	return "avatars/" + username + ".jpg"
}

// Provision creates the user's profile, seeding its avatar with a copy of
// the default asset. The copy runs first: when the default asset is missing
// or unreadable, no profile row is written and the error is fatal for the
// registration that triggered it.
func (s *ProfileService) Provision(ctx context.Context, username string) error {
	key := avatarKey(username)
	if err := s.avatars.CopyDefault(ctx, key); err != nil {
		return fmt.Errorf("seed default avatar: %w", err)
	}

	now := time.Now().UTC()
	profile := &domain.Profile{
		Username:  username,
		AvatarKey: key,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.profiles.Create(ctx, profile); err != nil {
		return fmt.Errorf("create profile: %w", err)
	}

	s.logger.Info().Str("username", username).Str("avatar_key", key).Msg("profile provisioned")
	return nil
}

// Update applies the account form: bio, phone number, optionally a new email
// and a replacement avatar. The avatar upload happens before the row write so
// a failed upload leaves the profile untouched. The email lives on the user
// row and is written after the profile row; the two writes are not one
// transaction, so a failed email write fails the request with the profile
// fields already saved.
func (s *ProfileService) Update(ctx context.Context, username string, in ports.ProfileUpdateInput) (*ports.ProfileView, error) {
	profile, err := s.profiles.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if in.Avatar != nil {
		if err := s.avatars.Put(ctx, profile.AvatarKey, in.Avatar.ContentType, in.Avatar.Content); err != nil {
			s.logger.Error().Err(err).Str("username", username).Msg("avatar upload failed")
			return nil, fmt.Errorf("upload avatar: %w", err)
		}
	}

	profile.Bio = in.Bio
	profile.PhoneNumber = in.PhoneNumber
	profile.UpdatedAt = time.Now().UTC()

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}

	if in.Email != "" {
		if err := s.users.UpdateEmail(ctx, username, in.Email); err != nil {
			return nil, err
		}
	}

	s.logger.Info().Str("username", username).Msg("profile updated")
	return s.Account(ctx, username)
}

// Account returns the owner's own view, email included.
func (s *ProfileService) Account(ctx context.Context, username string) (*ports.ProfileView, error) {
	profile, err := s.profiles.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	view := s.toView(profile)
	view.Email = user.Email
	return view, nil
}

// View returns the public, unauthenticated profile page for any username.
func (s *ProfileService) View(ctx context.Context, username string) (*ports.ProfileView, error) {
	profile, err := s.profiles.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.toView(profile), nil
}

func (s *ProfileService) toView(p *domain.Profile) *ports.ProfileView {
	return &ports.ProfileView{
		Username:    p.Username,
		AvatarURL:   s.avatars.URL(p.AvatarKey),
		Bio:         p.Bio,
		PhoneNumber: p.PhoneNumber,
		CreatedAt:   p.CreatedAt,
	}
}
