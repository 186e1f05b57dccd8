// Package handler exposes the ordering workflow over HTTP: the menu, order
// submission, and the kitchen view of a session's current order. It parses
// requests and renders responses; all business rules live in the domain
// packages.
package handler

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hotbox-dev/pizzaservice/internal/domain/menu"
	"github.com/hotbox-dev/pizzaservice/internal/domain/order"
	"github.com/hotbox-dev/pizzaservice/internal/session"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "pizza_session"

// Config holds non-dependency configuration for the Handler.
type Config struct {
	// CookieTTL bounds the session cookie lifetime. Zero means a session
	// cookie without Max-Age.
	CookieTTL time.Duration
}

// Handler serves the ordering API. The catalog is injected at startup; if
// wiring failed to provide one, the handler lazily builds the seed catalog
// itself instead of failing requests.
type Handler struct {
	cfg      Config
	sessions *session.Store

	catalogOnce sync.Once
	menu        *menu.Menu
	builder     *order.Builder
}

// NewHandler constructs a Handler. m may be nil; see Handler.
func NewHandler(cfg Config, m *menu.Menu, sessions *session.Store) *Handler {
	return &Handler{
		cfg:      cfg,
		sessions: sessions,
		menu:     m,
	}
}

// Routes returns the chi router for the ordering API.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/menu", h.Menu)
	r.Post("/orders", h.PlaceOrder)
	r.Get("/kitchen", h.Kitchen)
	return r
}

// catalog returns the shared menu, building the seed catalog once as a
// fallback when none was injected.
func (h *Handler) catalog() *menu.Menu {
	h.catalogOnce.Do(func() {
		if h.menu == nil {
			h.menu = menu.New()
		}
		h.builder = order.NewBuilder(h.menu)
	})
	return h.menu
}

// orderBuilder returns the builder over the shared menu.
func (h *Handler) orderBuilder() *order.Builder {
	h.catalog()
	return h.builder
}

// sessionToken returns the request's session token, issuing and setting a
// fresh one when the cookie is absent or empty.
func (h *Handler) sessionToken(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	token := uuid.New().String()
	cookie := &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if h.cfg.CookieTTL > 0 {
		cookie.MaxAge = int(h.cfg.CookieTTL.Seconds())
	}
	http.SetCookie(w, cookie)
	return token
}
