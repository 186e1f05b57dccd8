package menu

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Item represents a single dish on the menu. Identity is carried by the ID
// alone: two items with the same ID are the same dish, regardless of any
// later correction to name, description, or price.
type Item struct {
	id          string
	name        string
	description string
	price       decimal.Decimal
}

// NewItem creates a menu item. ID and name are required; description and
// price may be zero-valued and corrected later. Price must always be a
// decimal value, never a binary float, so repeated multiplication and
// summation of euro amounts stays exact.
func NewItem(id, name, description string, price decimal.Decimal) *Item {
	return &Item{
		id:          id,
		name:        name,
		description: description,
		price:       price,
	}
}

// ID returns the stable identifier of the item.
func (i *Item) ID() string { return i.id }

// Name returns the display name of the item.
func (i *Item) Name() string { return i.name }

// Description returns the optional item description.
func (i *Item) Description() string { return i.description }

// Price returns the unit price in euros.
func (i *Item) Price() decimal.Decimal { return i.price }

// SetName corrects the display name. Identity (ID) is unaffected.
func (i *Item) SetName(name string) { i.name = name }

// SetDescription corrects the description. Identity (ID) is unaffected.
func (i *Item) SetDescription(description string) { i.description = description }

// SetPrice corrects the unit price. Identity (ID) is unaffected.
func (i *Item) SetPrice(price decimal.Decimal) { i.price = price }

// Equal reports whether both items refer to the same dish, comparing by ID
// only.
func (i *Item) Equal(other *Item) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.id == other.id
}

// String renders the item for display: ID, name and the price with exactly
// two fraction digits.
func (i *Item) String() string {
	return fmt.Sprintf("%s %s %s €", i.id, i.name, i.price.StringFixed(2))
}
