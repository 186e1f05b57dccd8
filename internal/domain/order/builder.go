package order

import (
	"strconv"
	"strings"

	"github.com/hotbox-dev/pizzaservice/internal/domain/customer"
	"github.com/hotbox-dev/pizzaservice/internal/domain/menu"
)

// QuantityKeyPrefix is prepended to an item ID to form the submission key
// carrying that item's raw quantity value.
const QuantityKeyPrefix = "quantity_"

// FormValues exposes raw submitted values by key. net/url.Values satisfies
// this interface.
type FormValues interface {
	Get(key string) string
}

// BuildRequest carries everything the builder needs from one submission:
// the already-parsed customer, the raw form values, and request metadata.
type BuildRequest struct {
	Customer   customer.Customer
	Values     FormValues
	RemoteAddr string
	SessionID  string
}

// Builder turns raw submitted quantities into a populated order. The menu
// is an explicit dependency injected at construction, not an ambient
// global.
type Builder struct {
	menu *menu.Menu
}

// NewBuilder creates a builder over the given menu.
func NewBuilder(m *menu.Menu) *Builder {
	return &Builder{menu: m}
}

// Build assembles an order from one submission. It walks the menu in
// catalog order and reads each item's raw quantity from the form values
// under "quantity_<itemID>".
//
// Unusable values never fail the build; they mean "not ordered" and the
// item is skipped. This leniency is deliberate: a submission is a form
// full of mostly-empty quantity fields, and an unreadable field is
// indistinguishable from an empty one from the customer's point of view.
// A value is skipped when it is
//   - absent or blank,
//   - not parseable as an integer, or
//   - zero or negative.
//
// Build never returns an error; the worst case is an order with no lines.
func (b *Builder) Build(req BuildRequest) *Order {
	o := New(req.Customer, req.RemoteAddr, req.SessionID)

	for _, item := range b.menu.Items() {
		raw := strings.TrimSpace(req.Values.Get(QuantityKeyPrefix + item.ID()))
		if raw == "" {
			continue // not ordered
		}

		quantity, err := strconv.Atoi(raw)
		if err != nil {
			continue // unreadable input counts as not ordered
		}
		if quantity <= 0 {
			continue // zero and negative quantities count as not ordered
		}

		line, err := NewLine(item, quantity)
		if err != nil {
			// Unreachable after the filters above; skip rather than fail
			// so the build stays total.
			continue
		}
		_ = o.AddLine(line)
	}

	return o
}
