package handler

import (
	"net/http"

	"github.com/go-faster/jx"
)

// Kitchen renders the session's current order for the staff view. It
// returns 404 when the session has no order (none placed, or expired).
func (h *Handler) Kitchen(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(SessionCookie)
	if err != nil || c.Value == "" {
		writeError(w, http.StatusNotFound, "no order for this session")
		return
	}

	o, ok := h.sessions.Get(c.Value)
	if !ok {
		writeError(w, http.StatusNotFound, "no order for this session")
		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		encodeOrder(e, o)
	})
}
