package models

// Item represents an entry in the supermarket catalog.
type Item struct {
	// ID is the unique identifier for the item (opaque token, UUID format).
	ID string

	// Name is the display name. Unique within the catalog,
	// compared case-insensitively.
	Name string

	// Price is the unit price in PKR. Always strictly positive.
	Price float64
}
