package service

import (
	"context"
	"log/slog"

	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/billing"
	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/models"
	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/storage"
)

// SellerWorkflow exposes the billing actions available to a logged-in
// seller: browsing the catalog, composing a bill and generating receipts.
type SellerWorkflow struct {
	user     models.User
	items    storage.ItemStore
	composer *billing.Composer
}

// NewSellerWorkflow creates the workflow, with a fresh empty composer,
// bound to the authenticated seller.
func NewSellerWorkflow(user models.User, items storage.ItemStore, bills storage.BillLog, logger *slog.Logger) *SellerWorkflow {
	return &SellerWorkflow{
		user:     user,
		items:    items,
		composer: billing.NewComposer(user.Username, bills, logger),
	}
}

// User returns the logged-in seller.
func (w *SellerWorkflow) User() models.User { return w.user }

// Items lists the catalog available for selection.
func (w *SellerWorkflow) Items(ctx context.Context) ([]models.Item, error) {
	return w.items.Items(ctx)
}

// AddLine snapshots the item with the given ID into the current bill.
// Returns storage.ErrNotFound for an unknown item ID.
func (w *SellerWorkflow) AddLine(ctx context.Context, itemID string, quantity int) error {
	items, err := w.items.Items(ctx)
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.ID == itemID {
			return w.composer.AddLine(item, quantity)
		}
	}
	return storage.ErrNotFound
}

// Preview renders the in-progress bill and running total.
func (w *SellerWorkflow) Preview() string { return w.composer.Preview() }

// Total is the running total of the in-progress bill.
func (w *SellerWorkflow) Total() float64 { return w.composer.Total() }

// Generate finalizes the current bill, persists its receipt and returns
// both. The composer starts fresh afterwards.
func (w *SellerWorkflow) Generate(ctx context.Context) (*models.Bill, string, error) {
	return w.composer.Generate(ctx)
}

// Clear discards the in-progress bill.
func (w *SellerWorkflow) Clear() { w.composer.Clear() }
