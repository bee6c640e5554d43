package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-bot-keeper/internal/logger"
	"github.com/MKhiriev/go-bot-keeper/internal/utils"
	"github.com/MKhiriev/go-bot-keeper/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var admin models.Admin
	if err := utils.ReadJSON(r.Body, &admin); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrBodyNotJSON, err))
		return
	}

	if err := h.services.AuthService.Login(ctx, admin); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, admin.Login)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("login", admin.Login).Msg("admin logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}
