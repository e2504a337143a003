package http

import (
	"net/http"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/TessVincent/prismhealth/internal/service"
	"github.com/TessVincent/prismhealth/models"
)

// the relayer routes sit outside the session group
func serveRelayer(h *Handler, target string, body any) int {
	return serve(h, http.MethodPost, target, body).Code
}

func TestEncryptInputs(t *testing.T) {
	h, m := newTestHandler(t)

	req := models.EncryptInputsRequest{
		Contract: common.HexToAddress("0xc0"), User: testOwner, Values: []uint64{130, 85}, Bits: []uint8{16, 16},
	}
	resp := models.EncryptInputsResponse{Handles: []common.Hash{common.HexToHash("0x01"), common.HexToHash("0x02")}, InputProof: hexutil.Bytes{1}}
	m.gateway.EXPECT().EncryptInputs(gomock.Any(), req).Return(resp, nil)

	rr := serve(h, http.MethodPost, "/relayer/v1/inputs", req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, resp, decodeResponse[models.EncryptInputsResponse](t, rr))
}

func TestEncryptInputs_RateLimited(t *testing.T) {
	h, m := newTestHandler(t)
	m.gateway.EXPECT().EncryptInputs(gomock.Any(), gomock.Any()).Return(models.EncryptInputsResponse{}, service.ErrRateLimited)

	assert.Equal(t, http.StatusTooManyRequests, serveRelayer(h, "/relayer/v1/inputs", models.EncryptInputsRequest{}))
}

func TestUserDecrypt_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "expired grant", err: models.ErrGrantExpired, wantStatus: http.StatusForbidden},
		{name: "bad signature", err: models.ErrBadSignature, wantStatus: http.StatusForbidden},
		{name: "no rights", err: models.ErrMissingRights, wantStatus: http.StatusForbidden},
		{name: "unknown handle", err: models.ErrUnknownHandle, wantStatus: http.StatusNotFound},
		{name: "rate limited", err: service.ErrRateLimited, wantStatus: http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.gateway.EXPECT().UserDecrypt(gomock.Any(), gomock.Any()).Return(models.UserDecryptResponse{}, tt.err)

			assert.Equal(t, tt.wantStatus, serveRelayer(h, "/relayer/v1/user-decrypt", models.UserDecryptRequest{UserAddress: testOwner}))
		})
	}
}

func TestUserDecrypt_Success(t *testing.T) {
	h, m := newTestHandler(t)
	handle := common.HexToHash("0x0300")
	m.gateway.EXPECT().UserDecrypt(gomock.Any(), gomock.Any()).
		Return(models.UserDecryptResponse{Sealed: map[common.Hash]hexutil.Bytes{handle: {0xde, 0xad}}}, nil)

	rr := serve(h, http.MethodPost, "/relayer/v1/user-decrypt", models.UserDecryptRequest{UserAddress: testOwner})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, hexutil.Bytes{0xde, 0xad}, decodeResponse[models.UserDecryptResponse](t, rr).Sealed[handle])
}
