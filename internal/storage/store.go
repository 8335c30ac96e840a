// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/models"
)

// ErrNotFound is returned when a record targeted by a removal or lookup
// does not exist in the store.
var ErrNotFound = errors.New("record not found")

// ItemStore is the catalog repository. Implementations mirror the backing
// file in memory: after any successful mutation the file reflects exactly
// the in-memory collection.
type ItemStore interface {
	// Items returns all catalog items in file order.
	Items(ctx context.Context) ([]models.Item, error)

	// AddItem appends the item and rewrites the backing file. On a failed
	// write the in-memory collection is left unchanged. Uniqueness of the
	// name is the caller's responsibility.
	AddItem(ctx context.Context, item models.Item) error

	// RemoveItem removes the item with the given ID.
	// Returns ErrNotFound if no such item exists.
	RemoveItem(ctx context.Context, id string) error
}

// UserStore is the account repository.
type UserStore interface {
	// Users returns all accounts in file order. Unlike the item store,
	// a missing backing file is an error (wrapping fs.ErrNotExist).
	Users(ctx context.Context) ([]models.User, error)

	// AddUser appends the user and rewrites the backing file. Uniqueness
	// of the username is the caller's responsibility.
	AddUser(ctx context.Context, user models.User) error

	// RemoveUser removes the account with the given username.
	// Returns ErrNotFound if no such account exists.
	RemoveUser(ctx context.Context, username string) error

	// EnsureExists creates the backing file containing exactly the seed
	// record if the file is absent. Reports whether it created the file.
	EnsureExists(ctx context.Context, seed models.User) (bool, error)
}

// BillLog is the append-only receipt log. Receipts are never rewritten.
type BillLog interface {
	AppendReceipt(ctx context.Context, receipt string) error
}
