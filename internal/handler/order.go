package handler

import (
	"net"
	"net/http"

	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/hotbox-dev/pizzaservice/internal/domain/customer"
	"github.com/hotbox-dev/pizzaservice/internal/domain/order"
)

// PlaceOrder accepts a form-encoded submission: the customer fields plus
// one optional "quantity_<itemID>" value per catalog item. Unusable
// quantities mean "not ordered" and are skipped by the builder, so the
// submission itself never fails validation; the only client error here is
// an unparseable body.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "malformed form body")
		return
	}

	cust := customer.New(
		r.PostForm.Get("salutation"),
		r.PostForm.Get("first_name"),
		r.PostForm.Get("last_name"),
		r.PostForm.Get("street"),
		r.PostForm.Get("house_number"),
		r.PostForm.Get("postal_code"),
		r.PostForm.Get("city"),
	)

	token := h.sessionToken(w, r)

	o := h.orderBuilder().Build(order.BuildRequest{
		Customer:   cust,
		Values:     r.PostForm,
		RemoteAddr: clientAddr(r),
		SessionID:  token,
	})

	// Session scope: keep the order for later redisplay (kitchen view).
	// A re-submission from the same session replaces the stored order.
	h.sessions.Put(token, o)

	zctx.From(r.Context()).Info("order placed",
		zap.String("session_id", token),
		zap.Int("lines", len(o.Lines())),
		zap.String("total", o.GrandTotal().StringFixed(2)),
	)

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) {
		encodeOrder(e, o)
	})
}

// clientAddr returns the client host without the ephemeral port.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
