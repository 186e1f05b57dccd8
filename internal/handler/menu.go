package handler

import (
	"net/http"

	"github.com/go-faster/jx"
)

// Menu renders the catalog in definition order.
func (h *Handler) Menu(w http.ResponseWriter, r *http.Request) {
	items := h.catalog().Items()

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("items")
		e.ArrStart()
		for _, it := range items {
			encodeItem(e, it)
		}
		e.ArrEnd()
		e.ObjEnd()
	})
}
