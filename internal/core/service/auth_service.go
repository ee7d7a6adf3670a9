package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/memoboard/memoboard-api/internal/core/domain"
	"github.com/memoboard/memoboard-api/internal/core/ports"
)

// AuthService implements registration, login and logout. Registration is the
// single entry point that provisions the user's profile: the call into
// ProfileService.Provision is explicit and synchronous, so the
// create-then-provision sequence is visible and testable rather than hidden
// behind an event hook.
type AuthService struct {
	users     ports.UserRepository
	profiles  ports.ProfileService
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	profiles ports.ProfileService,
	sessions ports.SessionStore,
	jwtSecret string,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		profiles:  profiles,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Register creates the account, provisions its profile, and starts a session
// so the new user is logged in. If provisioning fails the freshly inserted
// user row is removed again: no account may exist without a profile.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	if err := s.profiles.Provision(ctx, created.Username); err != nil {
		s.logger.Error().Err(err).Str("username", created.Username).Msg("profile provisioning failed, rolling back user")
		if delErr := s.users.Delete(ctx, created.Username); delErr != nil {
			s.logger.Error().Err(delErr).Str("username", created.Username).Msg("rollback of half-registered user failed")
		}
		return "", nil, fmt.Errorf("%w: %v", domain.ErrProvisioningFailed, err)
	}

	token, err := s.startSession(ctx, created)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("account registered")
	return token, created, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.startSession(ctx, user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Logout revokes the session behind the given token ID. The JWT itself stays
// signature-valid until expiry; the auth guard rejects it once the session
// is gone.
func (s *AuthService) Logout(ctx context.Context, jti string) error {
	return s.sessions.Delete(ctx, jti)
}

func (s *AuthService) startSession(ctx context.Context, user *domain.User) (string, error) {
	jti := newSessionID()
	if err := s.sessions.Create(ctx, jti, user.Username, s.tokenTTL); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	claims := jwt.MapClaims{
		"username": user.Username,
		"jti":      jti,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// newSessionID returns a random 128-bit session identifier in hex.
func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", b)
}
