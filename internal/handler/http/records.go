package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/TessVincent/prismhealth/internal/utils"
	"github.com/TessVincent/prismhealth/models"
)

func (h *Handler) addHealthRecord(w http.ResponseWriter, r *http.Request) {
	owner, opts, err := mutatingCall(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var in models.HealthRecordInput
	if err = decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	sub, err := h.services.RecordService.AddHealthRecord(r.Context(), owner, in, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	submitted(w, sub)
}

func (h *Handler) addMedicationRecord(w http.ResponseWriter, r *http.Request) {
	owner, opts, err := mutatingCall(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var in models.MedicationRecordInput
	if err = decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	sub, err := h.services.RecordService.AddMedicationRecord(r.Context(), owner, in, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	submitted(w, sub)
}

func (h *Handler) addExerciseRecord(w http.ResponseWriter, r *http.Request) {
	owner, opts, err := mutatingCall(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var in models.ExerciseRecordInput
	if err = decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	sub, err := h.services.RecordService.AddExerciseRecord(r.Context(), owner, in, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	submitted(w, sub)
}

func (h *Handler) deleteHealthRecord(w http.ResponseWriter, r *http.Request) {
	owner, opts, err := mutatingCall(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := uintParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	sub, err := h.services.RecordService.DeleteHealthRecord(r.Context(), owner, id, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	submitted(w, sub)
}

// getRecord returns the handles of one record. Values stay encrypted; the
// caller decrypts them through the relayer.
func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
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

	var record any
	switch kind := models.RecordKind(chi.URLParam(r, "kind")); kind {
	case models.KindHealth:
		record, err = h.services.RecordService.GetHealthRecord(ctx, owner, id)
	case models.KindMedication:
		record, err = h.services.RecordService.GetMedicationRecord(ctx, owner, id)
	case models.KindExercise:
		record, err = h.services.RecordService.GetExerciseRecord(ctx, owner, id)
	default:
		err = models.Errorf(models.ErrUnknownRecordKind, "%q", kind)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) countRecords(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	count, err := h.services.RecordService.CountRecords(r.Context(), owner, models.RecordKind(chi.URLParam(r, "kind")))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CountResponse{Count: count}, http.StatusOK)
}
