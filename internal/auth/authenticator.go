package auth

import (
	"context"

	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// The session layer depends on this rather than on a concrete credential
// scheme.
type Authenticator interface {
	// Bootstrap prepares the credential backend for first use. For the
	// plaintext implementation this seeds the user file with the default
	// admin when the file is absent.
	Bootstrap(ctx context.Context) error

	// Authenticate verifies the credentials and returns the matching user.
	// Returns ErrEmptyCredentials, ErrUserNotFound or ErrStoreMissing on
	// rejection.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}
