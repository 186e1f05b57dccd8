package order

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/hotbox-dev/pizzaservice/internal/domain/menu"
)

// Sentinel errors for line construction and mutation. These are caller
// contract violations; the builder workflow pre-filters its input so it
// never triggers them.
var (
	ErrNilItem         = errors.New("order line item must not be nil")
	ErrInvalidQuantity = errors.New("order line quantity must be at least 1")
)

// Line is one position of an order: a menu item, a quantity, and the
// derived line total. The total is always item price × quantity; it is
// recomputed on every mutation and can only diverge through the explicit
// OverrideTotal escape hatch.
type Line struct {
	item     *menu.Item
	quantity int
	total    decimal.Decimal
}

// NewLine creates a line for the given item and quantity. It returns
// ErrNilItem if item is nil and ErrInvalidQuantity if quantity < 1.
func NewLine(item *menu.Item, quantity int) (*Line, error) {
	if item == nil {
		return nil, ErrNilItem
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	return &Line{
		item:     item,
		quantity: quantity,
		total:    lineTotal(item, quantity),
	}, nil
}

func lineTotal(item *menu.Item, quantity int) decimal.Decimal {
	return item.Price().Mul(decimal.NewFromInt(int64(quantity)))
}

// Item returns the menu item of this line. The item is a shared reference
// into the catalog, not a copy.
func (l *Line) Item() *menu.Item { return l.item }

// Quantity returns the ordered quantity.
func (l *Line) Quantity() int { return l.quantity }

// Total returns the line total in euros.
func (l *Line) Total() decimal.Decimal { return l.total }

// SetItem replaces the item and recomputes the total with the current
// quantity. It returns ErrNilItem if item is nil.
func (l *Line) SetItem(item *menu.Item) error {
	if item == nil {
		return ErrNilItem
	}
	l.item = item
	l.total = lineTotal(item, l.quantity)
	return nil
}

// SetQuantity replaces the quantity and recomputes the total with the
// current item. It returns ErrInvalidQuantity if quantity < 1.
func (l *Line) SetQuantity(quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	l.quantity = quantity
	l.total = lineTotal(l.item, quantity)
	return nil
}

// OverrideTotal sets the line total directly, bypassing recomputation.
// This is an escape hatch for manual price corrections; the builder
// workflow never uses it, and any later SetItem/SetQuantity restores the
// computed value.
func (l *Line) OverrideTotal(total decimal.Decimal) {
	l.total = total
}

// Equal compares two lines by (item, quantity). The total is derived and
// does not participate.
func (l *Line) Equal(other *Line) bool {
	if l == nil || other == nil {
		return l == other
	}
	return l.item.Equal(other.item) && l.quantity == other.quantity
}

// String renders the line for display, e.g. "2 × Pizza Salami = 15.90 €".
func (l *Line) String() string {
	return fmt.Sprintf("%d × %s = %s €", l.quantity, l.item.Name(), l.total.StringFixed(2))
}
