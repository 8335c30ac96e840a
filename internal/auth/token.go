package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid or expired session token")
	ErrNoSession    = errors.New("no persisted session")
)

// SessionTokens issues and validates signed session tokens persisted to a
// file, so a restarted process can resume a login without re-prompting.
// Tokens name the user; they are not credentials and do not change how
// passwords are stored.
type SessionTokens struct {
	secretKey []byte
	ttl       time.Duration
	path      string
}

type sessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// NewSessionTokens creates a token manager writing to the given path.
// secret signs tokens with HS256; ttl bounds how long a persisted session
// stays resumable.
func NewSessionTokens(secret string, ttl time.Duration, path string) *SessionTokens {
	return &SessionTokens{secretKey: []byte(secret), ttl: ttl, path: path}
}

// Save signs a token for the user and writes it to the session file.
func (m *SessionTokens) Save(user *models.User) error {
	claims := &sessionClaims{
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return fmt.Errorf("failed to sign session token: %w", err)
	}
	if err := os.WriteFile(m.path, []byte(signed), 0o600); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// Load reads and validates the persisted token, returning the username
// and role it names. Returns ErrNoSession when no session file exists and
// ErrInvalidToken when the token is tampered with or expired.
func (m *SessionTokens) Load() (string, models.Role, error) {
	raw, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", "", ErrNoSession
		}
		return "", "", fmt.Errorf("failed to read session file: %w", err)
	}
	token, err := jwt.ParseWithClaims(string(raw), &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return "", "", ErrInvalidToken
	}
	return claims.Username, models.Role(claims.Role), nil
}

// Clear deletes the session file. A missing file is not an error.
func (m *SessionTokens) Clear() error {
	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
