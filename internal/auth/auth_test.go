package auth_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/auth"
	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/models"
	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/storage/textfile"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthenticator(t *testing.T) (*auth.PlaintextAuthenticator, *textfile.UserStore) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.txt")
	store := textfile.NewUserStore(path, testLogger())
	return auth.NewPlaintextAuthenticator(store, testLogger()), store
}

func TestBootstrapSeedsDefaultAdmin(t *testing.T) {
	ctx := context.Background()
	a, _ := newAuthenticator(t)

	if err := a.Bootstrap(ctx); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	user, err := a.Authenticate(ctx, auth.DefaultAdminUsername, auth.DefaultAdminPassword)
	if err != nil {
		t.Fatalf("Authenticate(seeded admin) failed: %v", err)
	}
	if !user.Role.IsAdmin() {
		t.Errorf("seeded admin role = %q, want admin", user.Role)
	}
}

func TestAuthenticateFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("empty credentials", func(t *testing.T) {
		a, _ := newAuthenticator(t)
		for _, creds := range [][2]string{{"", "pw"}, {"admin", ""}, {"", ""}} {
			if _, err := a.Authenticate(ctx, creds[0], creds[1]); !errors.Is(err, auth.ErrEmptyCredentials) {
				t.Errorf("Authenticate(%q, %q) = %v, want ErrEmptyCredentials", creds[0], creds[1], err)
			}
		}
	})

	t.Run("missing store without bootstrap", func(t *testing.T) {
		a, _ := newAuthenticator(t)
		if _, err := a.Authenticate(ctx, "admin", "password123"); !errors.Is(err, auth.ErrStoreMissing) {
			t.Errorf("Authenticate = %v, want ErrStoreMissing", err)
		}
	})

	t.Run("wrong password is never a partial match", func(t *testing.T) {
		a, _ := newAuthenticator(t)
		if err := a.Bootstrap(ctx); err != nil {
			t.Fatal(err)
		}
		if _, err := a.Authenticate(ctx, "admin", "wrong"); !errors.Is(err, auth.ErrUserNotFound) {
			t.Errorf("Authenticate(wrong password) = %v, want ErrUserNotFound", err)
		}
		// Case differs: login comparison is case-sensitive.
		if _, err := a.Authenticate(ctx, "Admin", "password123"); !errors.Is(err, auth.ErrUserNotFound) {
			t.Errorf("Authenticate(case-different username) = %v, want ErrUserNotFound", err)
		}
	})
}

func TestAuthenticateSellerLifecycle(t *testing.T) {
	ctx := context.Background()
	a, store := newAuthenticator(t)
	if err := a.Bootstrap(ctx); err != nil {
		t.Fatal(err)
	}

	bob := models.User{Username: "bob", Password: "secret", Role: models.RoleSeller}
	if err := store.AddUser(ctx, bob); err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}

	user, err := a.Authenticate(ctx, "bob", "secret")
	if err != nil {
		t.Fatalf("Authenticate(bob) failed: %v", err)
	}
	if !user.Role.IsSeller() {
		t.Errorf("bob role = %q, want seller", user.Role)
	}

	if err := store.RemoveUser(ctx, "bob"); err != nil {
		t.Fatalf("RemoveUser failed: %v", err)
	}
	if _, err := a.Authenticate(ctx, "bob", "secret"); !errors.Is(err, auth.ErrUserNotFound) {
		t.Errorf("Authenticate(deleted seller) = %v, want ErrUserNotFound", err)
	}
}
