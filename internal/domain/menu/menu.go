// Package menu holds the restaurant's catalog: the fixed list of dishes a
// customer can order from. The catalog is built once at startup and treated
// as shared read-only reference data afterwards; it provides no internal
// locking, so any runtime mutation must be serialized by the caller.
package menu

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Sentinel errors for catalog operations.
var (
	ErrNilItem  = errors.New("menu item must not be nil")
	ErrNotFound = errors.New("menu item not found")
)

// Menu is the ordered catalog of items. Order is stable and matches the
// seed definition order; it drives display and order-building iteration,
// not pricing.
type Menu struct {
	items []*Item
}

// New returns a menu seeded with the reference catalog. Swapping the seed
// for a persistent data source is a deliberate extension point, not part of
// this package.
func New() *Menu {
	m := &Menu{}
	for _, it := range seedItems() {
		m.items = append(m.items, it)
	}
	return m
}

// NewEmpty returns a menu with no items. Mostly useful for tests and for
// callers providing their own catalog.
func NewEmpty() *Menu {
	return &Menu{}
}

func seedItems() []*Item {
	price := decimal.RequireFromString
	return []*Item{
		NewItem("Pi01", "Pizzabrot", "mit Tomatensauce", price("3.50")),
		NewItem("Pi02", "Pizza Margherita", "mit Tomatensauce und frisch geriebenem Edamer-Käse", price("6.70")),
		NewItem("Pi03", "Pizza Salami", "mit Rindersalami", price("7.95")),
		NewItem("Pi04", "Pizza Spinaci", "mit Champignons, Spinat und Spiegelei", price("8.50")),
		NewItem("Pi05", "Pizza Bolognese", "mit Hackfleischsauce, Rindersalami und Jalapenos", price("9.50")),
		NewItem("Pi06", "Pizza Texas", "mit Zwiebeln, Jalapenos (scharf), Rindersalami und Barbecuesauce", price("9.80")),
		NewItem("Pi07", "Pizza Quattro Formaggi", "mit vier verschiedenen Käsesorten", price("10.90")),
		NewItem("Pi08", "Pizza Parma", "mit Schwarzwälder Schinken, frischem Rucola und geraspeltem Parmesan", price("10.95")),
	}
}

// Items returns a copy-on-read snapshot of the catalog in definition order.
// Mutating the returned slice has no effect on the menu, so the shared
// catalog cannot be grown, shrunk, or reordered through this view.
func (m *Menu) Items() []*Item {
	out := make([]*Item, len(m.items))
	copy(out, m.items)
	return out
}

// Len returns the number of items on the menu.
func (m *Menu) Len() int { return len(m.items) }

// Add appends an item to the catalog. It returns ErrNilItem if item is nil.
func (m *Menu) Add(item *Item) error {
	if item == nil {
		return ErrNilItem
	}
	m.items = append(m.items, item)
	return nil
}

// FindByID returns the catalog item with the given ID, or ErrNotFound.
// The returned pointer references the shared catalog entry; callers must
// treat it as read-only.
func (m *Menu) FindByID(id string) (*Item, error) {
	for _, it := range m.items {
		if it.id == id {
			return it, nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "id %s", id)
}
