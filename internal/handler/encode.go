package handler

import (
	"net/http"

	"github.com/go-faster/jx"

	"github.com/hotbox-dev/pizzaservice/internal/domain/menu"
	"github.com/hotbox-dev/pizzaservice/internal/domain/order"
)

// writeJSON encodes a response body with jx and writes it with the given
// status.
func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	var e jx.Encoder
	encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// writeError writes the shared error body: {"code":...,"message":...}.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("code")
		e.Int(status)
		e.FieldStart("message")
		e.Str(message)
		e.ObjEnd()
	})
}

// encodeItem renders one catalog item. Prices are JSON strings with two
// fraction digits so clients never see binary-float money.
func encodeItem(e *jx.Encoder, it *menu.Item) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(it.ID())
	e.FieldStart("name")
	e.Str(it.Name())
	e.FieldStart("description")
	e.Str(it.Description())
	e.FieldStart("price")
	e.Str(it.Price().StringFixed(2))
	e.ObjEnd()
}

// encodeOrder renders a priced order, including the display strings the
// presentation layer relies on.
func encodeOrder(e *jx.Encoder, o *order.Order) {
	e.ObjStart()

	e.FieldStart("session_id")
	e.Str(o.SessionID())

	c := o.Customer()
	e.FieldStart("customer")
	e.ObjStart()
	e.FieldStart("name")
	e.Str(c.DisplayName())
	e.FieldStart("address")
	e.Str(c.FormattedAddress())
	e.ObjEnd()

	e.FieldStart("items")
	e.ArrStart()
	for _, l := range o.Lines() {
		e.ObjStart()
		e.FieldStart("id")
		e.Str(l.Item().ID())
		e.FieldStart("name")
		e.Str(l.Item().Name())
		e.FieldStart("quantity")
		e.Int(l.Quantity())
		e.FieldStart("total")
		e.Str(l.Total().StringFixed(2))
		e.FieldStart("display")
		e.Str(l.String())
		e.ObjEnd()
	}
	e.ArrEnd()

	e.FieldStart("total")
	e.Str(o.GrandTotal().StringFixed(2))

	e.ObjEnd()
}
