package http

import (
	"errors"
	"net/http"

	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/service"
	"github.com/TessVincent/prismhealth/internal/utils"
	"github.com/TessVincent/prismhealth/models"
)

// errorStatusMap holds statuses that differ from their category's.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrChallengeExpired:        http.StatusUnauthorized,
	service.ErrChallengeSignature:      http.StatusUnauthorized,
	service.ErrReceiptNotFound:         http.StatusNotFound,
	service.ErrRateLimited:             http.StatusTooManyRequests,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,

	models.ErrInvalidInputProof:    http.StatusUnprocessableEntity,
	models.ErrInvalidHandleType:    http.StatusUnprocessableEntity,
	models.ErrIndexOutOfRange:      http.StatusNotFound,
	models.ErrNoActiveHealthRecord: http.StatusNotFound,
	models.ErrNoHealthScore:        http.StatusNotFound,
	models.ErrUnknownHandle:        http.StatusNotFound,
	models.ErrRecordDeleted:        http.StatusConflict,
}

var categoryStatusMap = map[error]int{
	models.ErrValidation:       http.StatusBadRequest,
	models.ErrAccess:           http.StatusForbidden,
	models.ErrAuthorization:    http.StatusForbidden,
	models.ErrProtocolMismatch: http.StatusConflict,
	models.ErrHandleResolution: http.StatusUnprocessableEntity,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	if status, ok := categoryStatusMap[models.Category(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// writeError answers with a models.ErrorResponse. Internal errors are logged
// in full and reported without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	resp := models.NewErrorResponse(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
		resp.Message = http.StatusText(status)
	} else {
		log.Warn().Err(err).Str("uri", r.RequestURI).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, resp, status)
}
