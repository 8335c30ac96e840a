package textfile

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/models"
	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/storage"
)

// Ensure the text-file stores implement the storage interfaces.
var (
	_ storage.ItemStore = (*ItemStore)(nil)
	_ storage.UserStore = (*UserStore)(nil)
)

// ItemStore is the catalog repository backed by items.txt.
type ItemStore struct {
	repo repository[models.Item]
}

// NewItemStore creates a catalog store on the given path. A missing file
// is created empty on first access.
func NewItemStore(path string, logger *slog.Logger) *ItemStore {
	return &ItemStore{repo: repository[models.Item]{
		path:            path,
		codec:           ItemCodec{},
		logger:          logger,
		createIfMissing: true,
	}}
}

func (s *ItemStore) Items(ctx context.Context) ([]models.Item, error) {
	return s.repo.all()
}

func (s *ItemStore) AddItem(ctx context.Context, item models.Item) error {
	return s.repo.add(item)
}

func (s *ItemStore) RemoveItem(ctx context.Context, id string) error {
	removed, err := s.repo.remove(func(item models.Item) bool { return item.ID == id })
	if err != nil {
		return err
	}
	if !removed {
		return storage.ErrNotFound
	}
	return nil
}

// UserStore is the account repository backed by users.txt. Unlike the
// item store, a missing file is an error; first-run seeding goes through
// EnsureExists instead.
type UserStore struct {
	repo repository[models.User]
}

// NewUserStore creates an account store on the given path.
func NewUserStore(path string, logger *slog.Logger) *UserStore {
	return &UserStore{repo: repository[models.User]{
		path:   path,
		codec:  UserCodec{},
		logger: logger,
	}}
}

func (s *UserStore) Users(ctx context.Context) ([]models.User, error) {
	return s.repo.all()
}

func (s *UserStore) AddUser(ctx context.Context, user models.User) error {
	return s.repo.add(user)
}

func (s *UserStore) RemoveUser(ctx context.Context, username string) error {
	removed, err := s.repo.remove(func(user models.User) bool { return user.Username == username })
	if err != nil {
		return err
	}
	if !removed {
		return storage.ErrNotFound
	}
	return nil
}

// EnsureExists writes a new backing file containing exactly the seed
// record if the file is absent. Existing files, even empty or malformed
// ones, are left alone.
func (s *UserStore) EnsureExists(ctx context.Context, seed models.User) (bool, error) {
	if _, err := os.Stat(s.repo.path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat %s: %w", s.repo.path, err)
	}
	if err := s.repo.saveAll([]models.User{seed}); err != nil {
		return false, err
	}
	s.repo.records = []models.User{seed}
	s.repo.loaded = true
	return true, nil
}
