package auth

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/models"
)

var (
	ErrEmptyCredentials = errors.New("username and password cannot be empty")
	ErrUserNotFound     = errors.New("invalid username or password")
	ErrStoreMissing     = errors.New("user data file not found")
)

// Credentials of the admin account seeded when the user file is created
// on first run.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "password123"
)

// UserDirectory is the slice of the user store the authenticator needs.
type UserDirectory interface {
	Users(ctx context.Context) ([]models.User, error)
	EnsureExists(ctx context.Context, seed models.User) (bool, error)
}

// PlaintextAuthenticator matches credentials by exact case-sensitive
// comparison against the plaintext passwords in the user store. The first
// match in file order wins. Plaintext storage is a documented limitation
// of the users.txt format, not something to quietly replace with hashing.
type PlaintextAuthenticator struct {
	users  UserDirectory
	logger *slog.Logger
}

var _ Authenticator = (*PlaintextAuthenticator)(nil)

// NewPlaintextAuthenticator creates an authenticator over the given
// user directory.
func NewPlaintextAuthenticator(users UserDirectory, logger *slog.Logger) *PlaintextAuthenticator {
	return &PlaintextAuthenticator{users: users, logger: logger}
}

// Bootstrap seeds the user store with the default admin if the backing
// file is absent. Runs once per missing-file condition, not per login.
func (a *PlaintextAuthenticator) Bootstrap(ctx context.Context) error {
	seed := models.User{
		Username: DefaultAdminUsername,
		Password: DefaultAdminPassword,
		Role:     models.RoleAdmin,
	}
	created, err := a.users.EnsureExists(ctx, seed)
	if err != nil {
		return fmt.Errorf("failed to seed user store: %w", err)
	}
	if created {
		a.logger.Info("User store created with default admin", "username", seed.Username)
	}
	return nil
}

// Authenticate looks the credentials up with a linear scan over all users.
func (a *PlaintextAuthenticator) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrEmptyCredentials
	}
	users, err := a.users.Users(ctx)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrStoreMissing
		}
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for _, user := range users {
		if user.Username == username && user.Password == password {
			match := user
			return &match, nil
		}
	}
	return nil, ErrUserNotFound
}
