package http

import (
	"net/http"

	"github.com/TessVincent/prismhealth/internal/utils"
	"github.com/TessVincent/prismhealth/models"
)

func (h *Handler) encryptInputs(w http.ResponseWriter, r *http.Request) {
	var req models.EncryptInputsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.GatewayService.EncryptInputs(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) userDecrypt(w http.ResponseWriter, r *http.Request) {
	var req models.UserDecryptRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.GatewayService.UserDecrypt(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
