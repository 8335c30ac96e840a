package models

import "time"

// BillLine is one item on an in-progress bill. The item is a snapshot
// taken when the line was added; later catalog changes do not affect it.
type BillLine struct {
	Item     Item
	Quantity int // always >= 1
}

// Subtotal is the line amount: unit price times quantity.
func (l BillLine) Subtotal() float64 {
	return l.Item.Price * float64(l.Quantity)
}

// Bill is a finalized sale. Bills are never mutated or deleted once
// generated; only their rendered receipt is persisted.
type Bill struct {
	// ID is unique per generation (millisecond timestamp plus a random
	// suffix, collisions statistically avoided only).
	ID string

	// Seller is the username of the seller who generated the bill.
	Seller string

	// CreatedAt is the generation time.
	CreatedAt time.Time

	// Lines are the bill lines in the order the seller added them.
	Lines []BillLine

	// Total is the sum of all line subtotals.
	Total float64
}
