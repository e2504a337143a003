package http

import (
	"fmt"
	"net/http"

	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/utils"
	"github.com/TessVincent/prismhealth/models"
)

// login exchanges a signed login challenge for a session token. The token is
// returned both in the body and in the Authorization header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("owner", token.Owner.Hex()).Msg("owner logged in")

	var expiresAt int64
	if token.ExpiresAt != nil {
		expiresAt = token.ExpiresAt.Unix()
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString, ExpiresAt: expiresAt}, http.StatusOK)
}
