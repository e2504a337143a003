package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TessVincent/prismhealth/internal/service"
	"github.com/TessVincent/prismhealth/models"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: ErrInvalidJSON, want: http.StatusBadRequest},
		{err: models.ErrValueOutOfDomain, want: http.StatusBadRequest},
		{err: models.ErrInvalidHandleType, want: http.StatusUnprocessableEntity},
		{err: models.ErrMissingRights, want: http.StatusForbidden},
		{err: models.ErrGrantConsumed, want: http.StatusForbidden},
		{err: models.ErrUnsupportedProtocol, want: http.StatusConflict},
		{err: models.ErrZeroHandle, want: http.StatusUnprocessableEntity},
		{err: fmt.Errorf("wrapped: %w", models.ErrRecordDeleted), want: http.StatusConflict},
		{err: models.Errorf(models.ErrIndexOutOfRange, "id %d", 9), want: http.StatusNotFound},
		{err: service.ErrReceiptNotFound, want: http.StatusNotFound},
		{err: service.ErrChallengeExpired, want: http.StatusUnauthorized},
		{err: ErrEmptyAuthorizationHeader, want: http.StatusUnauthorized},
		{err: service.ErrGrantsNotApplied, want: http.StatusInternalServerError},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
