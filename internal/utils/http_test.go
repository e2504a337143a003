package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TessVincent/prismhealth/models"
)

// ── WriteJSON ──

func TestWriteJSON_ProtocolInfo(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, models.ProtocolInfo{ProtocolID: 1}, http.StatusOK)
	require.NoError(t, err)

	assert.Positive(t, n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"confidentialProtocolId":1}`, w.Body.String())
}

func TestWriteJSON_StatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.NewErrorResponse(models.ErrRecordDeleted), http.StatusConflict)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestWriteJSON_Unencodable(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)
	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteJSON_HandlesAsHex(t *testing.T) {
	w := httptest.NewRecorder()
	h := common.HexToHash("0x01")

	_, err := WriteJSON(w, models.EncryptInputsResponse{Handles: []common.Hash{h}}, http.StatusCreated)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"`+h.Hex()+`"`)
}

// ── DecodeJSON ──

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    []uint64
		wantErr bool
	}{
		{name: "valid", body: `{"values":[130,85],"bits":[16,16]}`, want: []uint64{130, 85}},
		{name: "unknown field", body: `{"values":[1],"plaintext":true}`, wantErr: true},
		{name: "trailing data", body: `{"values":[1]}{"values":[2]}`, wantErr: true},
		{name: "malformed", body: `{"values":`, wantErr: true},
		{name: "empty", body: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req models.EncryptInputsRequest
			err := DecodeJSON(strings.NewReader(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Values)
		})
	}
}

func TestDecodeJSON_OversizedBody(t *testing.T) {
	body := `{"values":[` + strings.Repeat("1,", maxBodyBytes) + `1]}`

	var req models.EncryptInputsRequest
	assert.Error(t, DecodeJSON(strings.NewReader(body), &req))
}
