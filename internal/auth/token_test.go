package auth_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/auth"
	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/models"
)

func TestSessionTokens(t *testing.T) {
	user := &models.User{Username: "bob", Password: "secret", Role: models.RoleSeller}

	t.Run("save and load round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".session")
		tokens := auth.NewSessionTokens("test-secret", time.Hour, path)

		if err := tokens.Save(user); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		username, role, err := tokens.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if username != "bob" {
			t.Errorf("username = %q, want %q", username, "bob")
		}
		if !role.IsSeller() {
			t.Errorf("role = %q, want seller", role)
		}
	})

	t.Run("missing file means no session", func(t *testing.T) {
		tokens := auth.NewSessionTokens("test-secret", time.Hour, filepath.Join(t.TempDir(), ".session"))
		if _, _, err := tokens.Load(); !errors.Is(err, auth.ErrNoSession) {
			t.Errorf("Load = %v, want ErrNoSession", err)
		}
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".session")
		tokens := auth.NewSessionTokens("test-secret", -time.Minute, path)
		if err := tokens.Save(user); err != nil {
			t.Fatal(err)
		}
		if _, _, err := tokens.Load(); !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("Load(expired) = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".session")
		tokens := auth.NewSessionTokens("test-secret", time.Hour, path)
		if err := tokens.Save(user); err != nil {
			t.Fatal(err)
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		raw[len(raw)-1] ^= 0x01
		if err := os.WriteFile(path, raw, 0o600); err != nil {
			t.Fatal(err)
		}
		if _, _, err := tokens.Load(); !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("Load(tampered) = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".session")
		if err := auth.NewSessionTokens("secret-a", time.Hour, path).Save(user); err != nil {
			t.Fatal(err)
		}
		other := auth.NewSessionTokens("secret-b", time.Hour, path)
		if _, _, err := other.Load(); !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("Load(wrong secret) = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("clear removes the file and is idempotent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".session")
		tokens := auth.NewSessionTokens("test-secret", time.Hour, path)
		if err := tokens.Save(user); err != nil {
			t.Fatal(err)
		}
		if err := tokens.Clear(); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("session file still exists after Clear")
		}
		if err := tokens.Clear(); err != nil {
			t.Errorf("second Clear failed: %v", err)
		}
	})
}
