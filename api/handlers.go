package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/ChadProbert/celerity/internal/config"
	"github.com/ChadProbert/celerity/model"
	"github.com/ChadProbert/celerity/resolver"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Debug("response write failed")
	}
}

func (h *handler) resolve(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "missing q parameter", http.StatusBadRequest)
		return
	}
	settings := h.rt.Settings()
	action, err := resolver.Resolve(query, h.mgr, settings)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Action       model.Action `json:"action"`
		OpenInNewTab bool         `json:"openInNewTab"`
	}{action, settings.OpenInNewTab()})
}

func (h *handler) suggestOnce(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	items, err := h.provider.Suggest(r.Context(), query, h.mgr, h.rt.Settings())
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if items == nil {
		items = []string{}
	}
	writeJSON(w, http.StatusOK, struct {
		Query string   `json:"query"`
		Items []string `json:"items"`
	}{query, items})
}

func (h *handler) listCommands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Commands []model.Entry `json:"commands"`
	}{h.mgr.Entries()})
}

func (h *handler) putCommand(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	var cmd model.Command
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	// Overwrite confirmation happens in the page; the API reports whether
	// this replaced an existing command so the page can ask first.
	replaced := h.mgr.Has(key)
	if err := h.mgr.Set(key, cmd); err != nil {
		if errors.Is(err, model.ErrInvalidCommand) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to save command", http.StatusInternalServerError)
		return
	}
	saved, _ := h.mgr.Get(key)
	writeJSON(w, http.StatusOK, struct {
		Key      string        `json:"key"`
		Command  model.Command `json:"command"`
		Replaced bool          `json:"replaced"`
	}{key, saved, replaced})
}

func (h *handler) deleteCommand(w http.ResponseWriter, r *http.Request) {
	if err := h.mgr.Delete(chi.URLParam(r, "key")); err != nil {
		http.Error(w, "failed to delete command", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) resetCommands(w http.ResponseWriter, r *http.Request) {
	if err := h.mgr.Reset(); err != nil {
		http.Error(w, "failed to reset commands", http.StatusInternalServerError)
		return
	}
	h.listCommands(w, r)
}

func (h *handler) getSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.rt.Settings())
}

func (h *handler) putSettings(w http.ResponseWriter, r *http.Request) {
	var update config.SettingsUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	settings, err := h.rt.Update(update)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *handler) exportSnapshot(w http.ResponseWriter, r *http.Request) {
	doc, err := h.mgr.ExportSnapshot(h.rt.Settings())
	if err != nil {
		http.Error(w, "failed to export", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="celerity-backup.json"`)
	if _, err := w.Write(doc); err != nil {
		logrus.WithError(err).Debug("export write failed")
	}
}

func (h *handler) importSnapshot(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	snap, err := h.mgr.ImportSnapshot(body)
	if err != nil {
		if errors.Is(err, model.ErrBadSnapshot) || errors.Is(err, model.ErrInvalidCommand) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to import", http.StatusInternalServerError)
		return
	}
	if err := h.rt.ApplySnapshot(snap); err != nil {
		http.Error(w, "commands imported but settings failed to persist", http.StatusInternalServerError)
		return
	}
	h.listCommands(w, r)
}
