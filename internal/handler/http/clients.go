package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-bot-keeper/internal/logger"
	"github.com/MKhiriev/go-bot-keeper/internal/service"
	"github.com/MKhiriev/go-bot-keeper/internal/utils"
	"github.com/MKhiriev/go-bot-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	clients := h.services.ClientService.List(r.Context())

	if _, err := utils.WriteJSON(w, clients, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing clients")
	}
}

func (h *Handler) getClient(w http.ResponseWriter, r *http.Request) {
	id, err := clientIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	client, err := h.services.ClientService.View(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, client, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing client")
	}
}

// putClient creates a client when the path names the "new" sentinel and
// updates the named client otherwise. Unknown clients are never created
// implicitly.
func (h *Handler) putClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := clientIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var payload models.ClientPayload
	if err = utils.ReadJSON(r.Body, &payload); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrBodyNotJSON, err))
		return
	}

	var (
		client models.ClientView
		status int
	)
	if id == models.NewClientSentinel {
		client, err = h.services.ClientService.Create(ctx, payload)
		status = http.StatusCreated
	} else {
		client, err = h.services.ClientService.Update(ctx, id, payload)
		status = http.StatusOK
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str(logger.ClientIDField, client.ID).Int("status", status).Msg("client saved")

	if _, err = utils.WriteJSON(w, client, status); err != nil {
		log.Err(err).Msg("error writing client")
	}
}

func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := clientIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ClientService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// clientIDFromRequest returns the unescaped {id} path parameter.
func clientIDFromRequest(r *http.Request) (string, error) {
	id, err := url.PathUnescape(chi.URLParam(r, "id"))
	if err != nil || id == "" {
		return "", fmt.Errorf("%w: malformed client id", service.ErrClientNotFound)
	}
	return id, nil
}
