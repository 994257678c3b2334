// Package api exposes the resolution engine to the new tab page over
// HTTP: resolve and suggest queries, shortcut CRUD, settings, and
// backup/restore, plus a websocket channel for live suggestions.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ChadProbert/celerity/internal/config"
	"github.com/ChadProbert/celerity/store"
	"github.com/ChadProbert/celerity/suggest"
)

// RegisterRoutes wires the REST and websocket endpoints.
func RegisterRoutes(mgr *store.Manager, rt *config.Runtime, provider *suggest.Provider) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	h := &handler{mgr: mgr, rt: rt, provider: provider}

	r.Get("/api/resolve", h.resolve)
	r.Get("/api/suggest", h.suggestOnce)
	r.Get("/api/suggest/ws", h.suggestWS)

	r.Get("/api/commands", h.listCommands)
	r.Put("/api/commands/{key}", h.putCommand)
	r.Delete("/api/commands/{key}", h.deleteCommand)
	r.Post("/api/commands/reset", h.resetCommands)

	r.Get("/api/settings", h.getSettings)
	r.Put("/api/settings", h.putSettings)

	r.Get("/api/export", h.exportSnapshot)
	r.Post("/api/import", h.importSnapshot)

	return r
}

type handler struct {
	mgr      *store.Manager
	rt       *config.Runtime
	provider *suggest.Provider
}
