package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/auth"
	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/models"
	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/storage"
)

// Workflow is the role-specific action set handed to the presentation
// layer after login. Concrete types: *AdminWorkflow and *SellerWorkflow.
type Workflow interface {
	User() models.User
}

// Session holds zero or one logged-in user and routes a successful login
// to the workflow matching the user's role.
type Session struct {
	auth   auth.Authenticator
	items  storage.ItemStore
	users  storage.UserStore
	bills  storage.BillLog
	tokens *auth.SessionTokens
	logger *slog.Logger

	current *models.User
}

// NewSession wires the session over the auth service and stores. tokens
// may be nil to disable persisted sessions.
func NewSession(a auth.Authenticator, items storage.ItemStore, users storage.UserStore, bills storage.BillLog, tokens *auth.SessionTokens, logger *slog.Logger) *Session {
	return &Session{
		auth:   a,
		items:  items,
		users:  users,
		bills:  bills,
		tokens: tokens,
		logger: logger,
	}
}

// Login authenticates the credentials and dispatches to the matching
// workflow. No session is created on any failure.
func (s *Session) Login(ctx context.Context, username, password string) (Workflow, error) {
	user, err := s.auth.Authenticate(ctx, username, password)
	if err != nil {
		s.logger.Warn("Login failed", "username", username, "error", err)
		return nil, err
	}
	wf, err := s.dispatch(*user)
	if err != nil {
		s.logger.Warn("Login rejected", "username", user.Username, "role", user.Role, "error", err)
		return nil, err
	}
	s.current = user
	if s.tokens != nil {
		// Persisted session is a convenience; a failed write must not
		// undo a successful login.
		if err := s.tokens.Save(user); err != nil {
			s.logger.Warn("Failed to persist session", "error", err)
		}
	}
	s.logger.Info("Login successful", "username", user.Username, "role", user.Role)
	return wf, nil
}

// Resume restores a persisted session: the token must validate and the
// user it names must still exist in the store. A token for a deleted
// user is cleared and reported as no session.
func (s *Session) Resume(ctx context.Context) (Workflow, error) {
	if s.tokens == nil {
		return nil, auth.ErrNoSession
	}
	username, _, err := s.tokens.Load()
	if err != nil {
		return nil, err
	}
	users, err := s.users.Users(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user.Username != username {
			continue
		}
		wf, err := s.dispatch(user)
		if err != nil {
			return nil, err
		}
		match := user
		s.current = &match
		s.logger.Info("Session resumed", "username", user.Username, "role", user.Role)
		return wf, nil
	}
	if err := s.tokens.Clear(); err != nil {
		s.logger.Warn("Failed to clear stale session", "error", err)
	}
	return nil, auth.ErrNoSession
}

// CurrentUser returns the logged-in user, or nil when logged out.
func (s *Session) CurrentUser() *models.User { return s.current }

// Logout clears the session and any persisted token, returning the
// application to the unauthenticated entry point.
func (s *Session) Logout() {
	if s.current != nil {
		s.logger.Info("Logged out", "username", s.current.Username)
	}
	s.current = nil
	if s.tokens != nil {
		if err := s.tokens.Clear(); err != nil {
			s.logger.Warn("Failed to clear persisted session", "error", err)
		}
	}
}

func (s *Session) dispatch(user models.User) (Workflow, error) {
	switch {
	case user.Role.IsAdmin():
		return NewAdminWorkflow(user, s.items, s.users, s.logger), nil
	case user.Role.IsSeller():
		return NewSellerWorkflow(user, s.items, s.bills, s.logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, user.Role)
	}
}
