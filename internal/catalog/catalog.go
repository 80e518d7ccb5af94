package catalog

import (
	"fmt"
	"math"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
)

// Catalog holds the set of auctionable items in insertion order.
//
// The Catalog is a pure store: it validates item fields but knows nothing
// about bids or identities. It is owned by the auction engine, which
// serializes all access; the Catalog itself is not safe for concurrent use.
type Catalog struct {
	items []model.Item
}

// New creates a Catalog seeded with the given items. Each item's highest bid
// is raised to its starting price if below, restoring the invariant
// highestBid >= startingPrice for any persisted snapshot.
func New(items []model.Item) *Catalog {
	c := &Catalog{items: append([]model.Item(nil), items...)}
	for i := range c.items {
		if c.items[i].HighestBid < c.items[i].StartingPrice {
			c.items[i].HighestBid = c.items[i].StartingPrice
		}
	}
	return c
}

// List returns all items in catalog order (insertion order).
func (c *Catalog) List() []model.Item {
	return append([]model.Item(nil), c.items...)
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Get returns the item with the given id.
func (c *Catalog) Get(id int) (model.Item, error) {
	for _, item := range c.items {
		if item.ID == id {
			return item, nil
		}
	}
	return model.Item{}, fmt.Errorf("get item %d: %w", id, auctionerrors.ErrItemNotFound)
}

// Add creates a new item with a fresh id (max existing id + 1, or 1 when the
// catalog is empty) and highestBid equal to the starting price.
func (c *Catalog) Add(name string, startingPrice float64, image string) (model.Item, error) {
	if name == "" {
		return model.Item{}, fmt.Errorf("add item: %w - empty name", auctionerrors.ErrInvalidInput)
	}
	if !validPrice(startingPrice) {
		return model.Item{}, fmt.Errorf("add item: %w - starting price must be a positive number", auctionerrors.ErrInvalidInput)
	}

	item := model.Item{
		ID:            c.nextID(),
		Name:          name,
		StartingPrice: startingPrice,
		Image:         image,
		HighestBid:    startingPrice,
	}
	c.items = append(c.items, item)
	return item, nil
}

// Edit applies the provided fields of the edit request to the item. Absent or
// empty fields leave the attribute untouched. If the edit leaves highestBid
// below startingPrice, highestBid is raised to startingPrice; bids recorded in
// the ledger are not touched.
func (c *Catalog) Edit(id int, edit model.ItemEdit) (model.Item, error) {
	idx := c.indexOf(id)
	if idx < 0 {
		return model.Item{}, fmt.Errorf("edit item %d: %w", id, auctionerrors.ErrItemNotFound)
	}

	if edit.StartingPrice != nil && !validPrice(*edit.StartingPrice) {
		return model.Item{}, fmt.Errorf("edit item %d: %w - starting price must be a positive number", id, auctionerrors.ErrInvalidInput)
	}

	item := &c.items[idx]
	if edit.Name != nil && *edit.Name != "" {
		item.Name = *edit.Name
	}
	if edit.StartingPrice != nil {
		item.StartingPrice = *edit.StartingPrice
	}
	if edit.Image != nil && *edit.Image != "" {
		item.Image = *edit.Image
	}
	if item.HighestBid < item.StartingPrice {
		item.HighestBid = item.StartingPrice
	}
	return *item, nil
}

// Delete removes the item with the given id. Ledger entries referencing the
// item are retained by the caller for historical display.
func (c *Catalog) Delete(id int) error {
	idx := c.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("delete item %d: %w", id, auctionerrors.ErrItemNotFound)
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	return nil
}

// SetHighestBid records a new highest bid on the item.
func (c *Catalog) SetHighestBid(id int, amount float64) error {
	idx := c.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("set highest bid for item %d: %w", id, auctionerrors.ErrItemNotFound)
	}
	c.items[idx].HighestBid = amount
	return nil
}

// ResetAll sets every item's highestBid back to its starting price.
func (c *Catalog) ResetAll() {
	for i := range c.items {
		c.items[i].HighestBid = c.items[i].StartingPrice
	}
}

// Snapshot returns a copy of the current items, suitable for persistence or
// for restoring after a failed transaction.
func (c *Catalog) Snapshot() []model.Item {
	return append([]model.Item(nil), c.items...)
}

// Restore replaces the catalog contents with the given items.
func (c *Catalog) Restore(items []model.Item) {
	c.items = append([]model.Item(nil), items...)
}

func (c *Catalog) indexOf(id int) int {
	for i, item := range c.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (c *Catalog) nextID() int {
	if len(c.items) == 0 {
		return 1
	}
	return c.items[len(c.items)-1].ID + 1
}

func validPrice(p float64) bool {
	return p > 0 && !math.IsInf(p, 0)
}
