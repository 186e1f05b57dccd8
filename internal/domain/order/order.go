// Package order models a customer's submission against the menu: the
// ordered lines, the customer, request metadata, and the derived totals.
// An order is built by a single request and is not mutated concurrently.
package order

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/hotbox-dev/pizzaservice/internal/domain/customer"
)

// ErrNilLine is returned when a nil line is appended to an order.
var ErrNilLine = errors.New("order line must not be nil")

// Order aggregates a customer, the ordered lines in menu order, and the
// request metadata needed to correlate the order with its session.
type Order struct {
	customer   customer.Customer
	lines      []*Line
	remoteAddr string
	sessionID  string
}

// New creates an empty order carrying the request metadata.
func New(c customer.Customer, remoteAddr, sessionID string) *Order {
	return &Order{
		customer:   c,
		remoteAddr: remoteAddr,
		sessionID:  sessionID,
	}
}

// Customer returns the customer that placed the order.
func (o *Order) Customer() customer.Customer { return o.customer }

// RemoteAddr returns the network origin address of the submission.
func (o *Order) RemoteAddr() string { return o.remoteAddr }

// SessionID returns the session token the order belongs to.
func (o *Order) SessionID() string { return o.sessionID }

// Lines returns a snapshot of the order lines in insertion order, which is
// menu iteration order at build time.
func (o *Order) Lines() []*Line {
	out := make([]*Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// AddLine appends a line. It returns ErrNilLine if line is nil.
func (o *Order) AddLine(line *Line) error {
	if line == nil {
		return ErrNilLine
	}
	o.lines = append(o.lines, line)
	return nil
}

// GrandTotal sums all line totals. It is computed on demand, is exactly
// zero for an order without lines, and treats nil lines as contributing
// zero.
func (o *Order) GrandTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range o.lines {
		if l == nil {
			continue
		}
		sum = sum.Add(l.total)
	}
	return sum
}

// Equal compares two orders by (session token, customer) only. Line
// contents deliberately do not participate: an order models "the current
// order of this session", so a re-submission from the same session and
// customer is the same order even when the items differ.
func (o *Order) Equal(other *Order) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.sessionID == other.sessionID && o.customer.Equal(other.customer)
}

// String renders the order for display: customer, one line per position,
// and the grand total with two fraction digits.
func (o *Order) String() string {
	var sb strings.Builder
	sb.WriteString("Order")
	if name := o.customer.DisplayName(); name != "" {
		sb.WriteString(" for ")
		sb.WriteString(name)
	}
	sb.WriteByte('\n')
	for _, l := range o.lines {
		if l == nil {
			continue
		}
		sb.WriteString("  ")
		sb.WriteString(l.String())
		sb.WriteByte('\n')
	}
	sb.WriteString("Total: ")
	sb.WriteString(o.GrandTotal().StringFixed(2))
	sb.WriteString(" €")
	return sb.String()
}
