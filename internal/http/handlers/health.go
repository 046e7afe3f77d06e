package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/tanakrit-dev/userbase-be/internal/http/respond"
	"github.com/tanakrit-dev/userbase-be/internal/storage"
)

// PingHandler serves /ping by round-tripping the database clock.
type PingHandler struct {
	store storage.UserStore
	log   zerolog.Logger
}

// NewPingHandler creates the connectivity-check handler.
func NewPingHandler(store storage.UserStore, log zerolog.Logger) *PingHandler {
	return &PingHandler{store: store, log: log}
}

// Register attaches the ping route to the router.
func (h *PingHandler) Register(r chi.Router) {
	r.Get("/ping", h.handle)
}

func (h *PingHandler) handle(w http.ResponseWriter, r *http.Request) {
	now, err := h.store.Now(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("ping database")
		respond.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   now,
	})
}
