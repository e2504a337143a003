package http

import (
	"net/http"

	"github.com/TessVincent/prismhealth/internal/utils"
	"github.com/TessVincent/prismhealth/models"
)

// computeScore evaluates the score without storing it. The handles in the
// response can be decrypted once the transaction is sealed.
func (h *Handler) computeScore(w http.ResponseWriter, r *http.Request) {
	owner, opts, err := mutatingCall(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sub, err := h.services.ScoreService.ComputeScore(r.Context(), owner, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	submitted(w, sub)
}

func (h *Handler) storeScore(w http.ResponseWriter, r *http.Request) {
	owner, opts, err := mutatingCall(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sub, err := h.services.ScoreService.StoreScore(r.Context(), owner, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	submitted(w, sub)
}

func (h *Handler) getScore(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	score, err := h.services.ScoreService.GetScore(r.Context(), owner)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, score, http.StatusOK)
}

func (h *Handler) verifyRange(w http.ResponseWriter, r *http.Request) {
	owner, opts, err := mutatingCall(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var in models.RangeVerificationInput
	if err = decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	sub, err := h.services.ScoreService.VerifyInRange(r.Context(), owner, in, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	submitted(w, sub)
}

func (h *Handler) verifyThreshold(w http.ResponseWriter, r *http.Request) {
	owner, opts, err := mutatingCall(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var in models.ThresholdVerificationInput
	if err = decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	sub, err := h.services.ScoreService.VerifyScoreThreshold(r.Context(), owner, in, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	submitted(w, sub)
}
