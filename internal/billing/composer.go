// Package billing implements bill composition: accumulating line items,
// computing totals and persisting rendered receipts to the bill log.
package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/models"
	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/storage"
)

var (
	ErrEmptyBill       = errors.New("cannot generate an empty bill")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Composer accumulates lines for one in-progress bill. A composer moves
// from empty to composing as lines are added, and back to empty on
// Generate or Clear; nothing is persisted until Generate succeeds.
type Composer struct {
	seller string
	log    storage.BillLog
	logger *slog.Logger
	lines  []models.BillLine
}

// NewComposer creates an empty composer for the given seller.
func NewComposer(seller string, log storage.BillLog, logger *slog.Logger) *Composer {
	return &Composer{seller: seller, log: log, logger: logger}
}

// AddLine appends a line with a snapshot of the item. The core only
// requires a positive quantity; the presentation layer may cap it lower.
func (c *Composer) AddLine(item models.Item, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	c.lines = append(c.lines, models.BillLine{Item: item, Quantity: quantity})
	return nil
}

// Lines returns a copy of the current lines in the order they were added.
func (c *Composer) Lines() []models.BillLine {
	out := make([]models.BillLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total is the running sum of line subtotals.
func (c *Composer) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

// Clear discards all lines without persisting anything.
func (c *Composer) Clear() {
	c.lines = nil
}

// Generate finalizes the current lines into a bill: assigns an ID and
// timestamp, computes the total, renders the receipt and appends it to
// the bill log. On success the composer is cleared; on failure the lines
// are kept so the seller can retry. Prior receipts are never rewritten.
func (c *Composer) Generate(ctx context.Context) (*models.Bill, string, error) {
	if len(c.lines) == 0 {
		return nil, "", ErrEmptyBill
	}
	bill := &models.Bill{
		ID:        newBillID(),
		Seller:    c.seller,
		CreatedAt: time.Now(),
		Lines:     c.Lines(),
		Total:     c.Total(),
	}
	receipt := renderReceipt(bill)
	if err := c.log.AppendReceipt(ctx, receipt); err != nil {
		return nil, "", fmt.Errorf("failed to save bill: %w", err)
	}
	c.logger.Info("Bill generated",
		"bill_id", bill.ID,
		"seller", bill.Seller,
		"lines", len(bill.Lines),
		"total", bill.Total,
	)
	c.lines = nil
	return bill, receipt, nil
}

// newBillID concatenates the wall-clock millisecond timestamp with a
// small random suffix. Collisions are statistically avoided, not
// prevented.
func newBillID() string {
	return fmt.Sprintf("%d-%d", time.Now().UnixMilli(), rand.IntN(1000))
}
