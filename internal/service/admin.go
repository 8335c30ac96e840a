package service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/models"
	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/storage"
)

// AdminWorkflow exposes the catalog- and seller-management actions
// available to a logged-in admin.
type AdminWorkflow struct {
	user   models.User
	items  storage.ItemStore
	users  storage.UserStore
	logger *slog.Logger
}

// NewAdminWorkflow creates the workflow bound to the authenticated admin.
func NewAdminWorkflow(user models.User, items storage.ItemStore, users storage.UserStore, logger *slog.Logger) *AdminWorkflow {
	return &AdminWorkflow{user: user, items: items, users: users, logger: logger}
}

// User returns the logged-in admin.
func (w *AdminWorkflow) User() models.User { return w.user }

// Items lists the catalog in file order.
func (w *AdminWorkflow) Items(ctx context.Context) ([]models.Item, error) {
	return w.items.Items(ctx)
}

// AddItem validates the raw form input, assigns an ID and persists a new
// catalog item. Names must be unique case-insensitively; the price must
// parse as a positive number.
func (w *AdminWorkflow) AddItem(ctx context.Context, name, priceText string) (*models.Item, error) {
	name = strings.TrimSpace(name)
	priceText = strings.TrimSpace(priceText)
	if name == "" || priceText == "" {
		return nil, ErrEmptyItemFields
	}
	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil || price <= 0 {
		return nil, ErrInvalidPrice
	}
	existing, err := w.items.Items(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range existing {
		if strings.EqualFold(item.Name, name) {
			return nil, ErrDuplicateItemName
		}
	}
	item := models.Item{ID: uuid.NewString(), Name: name, Price: price}
	if err := w.items.AddItem(ctx, item); err != nil {
		return nil, err
	}
	w.logger.Info("Item added", "item_id", item.ID, "name", item.Name, "price", item.Price)
	return &item, nil
}

// DeleteItem removes the item with the given ID from the catalog.
func (w *AdminWorkflow) DeleteItem(ctx context.Context, id string) error {
	if err := w.items.RemoveItem(ctx, id); err != nil {
		return err
	}
	w.logger.Info("Item deleted", "item_id", id)
	return nil
}

// Sellers lists all accounts in file order. Callers display username and
// role only; passwords stay out of any table.
func (w *AdminWorkflow) Sellers(ctx context.Context) ([]models.User, error) {
	return w.users.Users(ctx)
}

// AddSeller validates and persists a new seller account. The role is
// fixed to seller; usernames must be unique case-insensitively across
// all accounts.
func (w *AdminWorkflow) AddSeller(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, ErrEmptySellerFields
	}
	existing, err := w.users.Users(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range existing {
		if strings.EqualFold(user.Username, username) {
			return nil, ErrDuplicateUsername
		}
	}
	seller := models.User{Username: username, Password: password, Role: models.RoleSeller}
	if err := w.users.AddUser(ctx, seller); err != nil {
		return nil, err
	}
	w.logger.Info("Seller added", "username", seller.Username)
	return &seller, nil
}

// DeleteSeller removes a seller account. Deleting the logged-in account
// or any admin account is always rejected.
func (w *AdminWorkflow) DeleteSeller(ctx context.Context, username string) error {
	if username == w.user.Username {
		return ErrDeleteSelf
	}
	existing, err := w.users.Users(ctx)
	if err != nil {
		return err
	}
	for _, user := range existing {
		if user.Username != username {
			continue
		}
		if user.Role.IsAdmin() {
			return ErrDeleteAdmin
		}
		if err := w.users.RemoveUser(ctx, username); err != nil {
			return err
		}
		w.logger.Info("Seller deleted", "username", username)
		return nil
	}
	return storage.ErrNotFound
}
