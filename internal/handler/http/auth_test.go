package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/TessVincent/prismhealth/internal/service"
	"github.com/TessVincent/prismhealth/models"
)

func TestLogin_Success(t *testing.T) {
	h, m := newTestHandler(t)
	expires := time.Unix(1_700_003_600, 0)

	req := models.LoginRequest{Address: testOwner, IssuedAt: 1_700_000_000, Signature: []byte{1, 2, 3}}
	m.auth.EXPECT().Login(gomock.Any(), req).Return(models.Token{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expires)},
		SignedString:     "signed",
		Owner:            testOwner,
	}, nil)

	rr := serve(h, http.MethodPost, "/api/v1/auth/login", req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed", rr.Header().Get("Authorization"))

	resp := decodeResponse[models.LoginResponse](t, rr)
	assert.Equal(t, "signed", resp.Token)
	assert.Equal(t, expires.Unix(), resp.ExpiresAt)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantCat    string
	}{
		{
			name:       "malformed JSON",
			body:       `{"address":`,
			wantStatus: http.StatusBadRequest,
			wantCat:    "validation",
		},
		{
			name:       "unknown field",
			body:       `{"login":"alice"}`,
			wantStatus: http.StatusBadRequest,
			wantCat:    "validation",
		},
		{
			name:       "bad signature",
			body:       `{"address":"0x00000000000000000000000000000000000000a1","issuedAt":1,"signature":"0x01"}`,
			serviceErr: service.ErrChallengeSignature,
			wantStatus: http.StatusUnauthorized,
			wantCat:    "internal",
		},
		{
			name:       "stale challenge",
			body:       `{"address":"0x00000000000000000000000000000000000000a1","issuedAt":1,"signature":"0x01"}`,
			serviceErr: service.ErrChallengeExpired,
			wantStatus: http.StatusUnauthorized,
			wantCat:    "internal",
		},
		{
			name:       "missing fields",
			body:       `{"address":"0x00000000000000000000000000000000000000a1","issuedAt":1,"signature":"0x01"}`,
			serviceErr: service.ErrInvalidDataProvided,
			wantStatus: http.StatusBadRequest,
			wantCat:    "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.serviceErr != nil {
				m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{}, tt.serviceErr)
			}

			rr := serve(h, http.MethodPost, "/api/v1/auth/login", tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Empty(t, rr.Header().Get("Authorization"))

			resp := decodeResponse[models.ErrorResponse](t, rr)
			assert.Equal(t, tt.wantCat, resp.Category)
		})
	}
}

// ── info ──

func TestLedgerInfo(t *testing.T) {
	h, m := newTestHandler(t)
	info := models.LedgerInfo{ChainID: 31337, ProtocolID: 1, Build: models.NewAppBuildInfo("v1.0.0", "", "")}
	m.appInfo.EXPECT().GetLedgerInfo(gomock.Any()).Return(info)

	rr := serve(h, http.MethodGet, "/api/v1/info", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, info, decodeResponse[models.LedgerInfo](t, rr))
}

func TestProtocol(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetProtocol(gomock.Any()).Return(models.ProtocolInfo{ProtocolID: 1})

	rr := serve(h, http.MethodGet, "/api/v1/protocol", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"confidentialProtocolId":1}`, rr.Body.String())
}
