package http

import (
	"net/http"

	"github.com/TessVincent/prismhealth/internal/utils"
	"github.com/TessVincent/prismhealth/models"
)

func (h *Handler) generateProof(w http.ResponseWriter, r *http.Request) {
	owner, opts, err := mutatingCall(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var in models.ProofInput
	if err = decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	sub, err := h.services.ProofService.GenerateProof(r.Context(), owner, in, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	submitted(w, sub)
}

func (h *Handler) getProof(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := uintParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	proof, err := h.services.ProofService.GetProof(r.Context(), owner, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, proof, http.StatusOK)
}

func (h *Handler) countProofs(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	count, err := h.services.ProofService.CountProofs(r.Context(), owner)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CountResponse{Count: count}, http.StatusOK)
}

// getReceipt answers 404 until the sealer has put the transaction in a block.
func (h *Handler) getReceipt(w http.ResponseWriter, r *http.Request) {
	hash, err := hashParam(r, "hash")
	if err != nil {
		writeError(w, r, err)
		return
	}

	receipt, err := h.services.ReceiptService.GetReceipt(r.Context(), hash)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, receipt, http.StatusOK)
}
