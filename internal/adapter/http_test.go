// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TessVincent/prismhealth/internal/config"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/utils"
	"github.com/TessVincent/prismhealth/models"
)

var testTxHash = common.HexToHash("0xabc0000000000000000000000000000000000000000000000000000000000001")

// newTestAdapter returns an adapter aimed at a test server.
func newTestAdapter(t *testing.T, serverURL string) *HTTPAdapter {
	t.Helper()
	a, err := NewHTTPAdapter(config.ClientConfig{
		ServerAddress:   serverURL,
		RequestTimeout:  2 * time.Second,
		RetryCount:      2,
		FinalityTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	a.pollInterval = 10 * time.Millisecond
	return a
}

func writeLedgerError(w http.ResponseWriter, err error, status int) {
	_, _ = utils.WriteJSON(w, models.NewErrorResponse(err), status)
}

// ── Construction ──

func TestNewHTTPAdapter_Address(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{name: "full url", address: "http://ledger:8080/"},
		{name: "host only", address: "localhost:8080"},
		{name: "empty", address: "   ", wantErr: true},
		{name: "no host", address: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPAdapter(config.ClientConfig{ServerAddress: tt.address}, logger.Nop())
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAddress)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ── Info and Login ──

func TestHTTPAdapter_LedgerInfo(t *testing.T) {
	want := models.LedgerInfo{ChainID: 31337, ProtocolID: 1, ContractAddress: common.HexToAddress("0xc0")}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/info", r.URL.Path)
		_, _ = utils.WriteJSON(w, want, http.StatusOK)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).LedgerInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestHTTPAdapter_Login_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			var req models.LoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, int64(42), req.IssuedAt)
			w.Header().Set("Authorization", "Bearer session-token")
			_, _ = utils.WriteJSON(w, models.LoginResponse{Token: "session-token"}, http.StatusOK)
		case "/api/v1/score":
			assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
			_, _ = utils.WriteJSON(w, models.HealthScore{Timestamp: 7}, http.StatusOK)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{IssuedAt: 42})
	require.NoError(t, err)
	assert.Equal(t, "session-token", a.Token())

	score, err := a.GetScore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), score.Timestamp)
}

func TestHTTPAdapter_Login_NoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, models.LoginResponse{}, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{})
	assert.ErrorIs(t, err, ErrMissingAuthHeader)
	assert.Empty(t, a.Token())
}

// ── Error mapping ──

func TestHTTPAdapter_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		respond func(w http.ResponseWriter)
		wantErr error
	}{
		{
			name:    "ledger sentinel",
			respond: func(w http.ResponseWriter) { writeLedgerError(w, models.Errorf(models.ErrRecordDeleted, "id 3"), http.StatusConflict) },
			wantErr: models.ErrRecordDeleted,
		},
		{
			name: "category only",
			respond: func(w http.ResponseWriter) {
				_, _ = utils.WriteJSON(w, models.ErrorResponse{Category: "access", Message: "nope"}, http.StatusForbidden)
			},
			wantErr: models.ErrAccess,
		},
		{
			name:    "unauthorized",
			respond: func(w http.ResponseWriter) { writeLedgerError(w, errors.New("token expired"), http.StatusUnauthorized) },
			wantErr: ErrUnauthorized,
		},
		{
			name:    "rate limited",
			respond: func(w http.ResponseWriter) { writeLedgerError(w, errors.New("slow down"), http.StatusTooManyRequests) },
			wantErr: ErrRateLimited,
		},
		{
			name:    "not found without code",
			respond: func(w http.ResponseWriter) { http.NotFound(w, nil) },
			wantErr: ErrNotFound,
		},
		{
			name:    "teapot",
			respond: func(w http.ResponseWriter) { w.WriteHeader(http.StatusTeapot) },
			wantErr: ErrUnexpectedStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.respond(w)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).GetHealthRecord(context.Background(), 3)
			assert.ErrorIs(t, err, tt.wantErr)

			var remote *RemoteError
			require.ErrorAs(t, err, &remote)
			assert.NotEmpty(t, remote.Message)
		})
	}
}

// ── Retries ──

func TestHTTPAdapter_ReadsRetryServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeLedgerError(w, errors.New("db locked"), http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CountProofs(context.Background())
	assert.ErrorIs(t, err, ErrServer)
	assert.Equal(t, int32(3), hits.Load())
}

func TestHTTPAdapter_WritesAreSentOnce(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeLedgerError(w, errors.New("grants not applied"), http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).StoreScore(context.Background(), models.CallOptions{})
	assert.ErrorIs(t, err, ErrServer)
	assert.Equal(t, int32(1), hits.Load())
}

func TestHTTPAdapter_ClientErrorsAreNotRetried(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeLedgerError(w, models.ErrBadSignature, http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).UserDecrypt(context.Background(), models.UserDecryptRequest{})
	assert.ErrorIs(t, err, models.ErrBadSignature)
	assert.Equal(t, int32(1), hits.Load())
}

// ── Mutating calls ──

func TestHTTPAdapter_AddHealthRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/records/health", r.URL.Path)
		assert.Empty(t, r.URL.Query().Get("simulate"))
		_, _ = utils.WriteJSON(w, models.Submission[uint64]{TxHash: testTxHash, Result: 4}, http.StatusAccepted)
	}))
	defer srv.Close()

	sub, err := newTestAdapter(t, srv.URL).AddHealthRecord(context.Background(), models.HealthRecordInput{}, models.CallOptions{})
	require.NoError(t, err)
	assert.Equal(t, testTxHash, sub.TxHash)
	assert.Equal(t, uint64(4), sub.Result)
}

func TestHTTPAdapter_DeleteHealthRecord_Simulated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/records/health/2", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("simulate"))
		_, _ = utils.WriteJSON(w, models.Submission[uint64]{Simulated: true, Result: 2}, http.StatusOK)
	}))
	defer srv.Close()

	sub, err := newTestAdapter(t, srv.URL).DeleteHealthRecord(context.Background(), 2, models.CallOptions{Simulate: true})
	require.NoError(t, err)
	assert.True(t, sub.Simulated)
}

func TestHTTPAdapter_Simulate(t *testing.T) {
	handle := common.HexToHash("0x0300")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PathVerifyThreshold, r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("simulate"))
		_, _ = utils.WriteJSON(w, models.Submission[common.Hash]{Simulated: true, Result: handle}, http.StatusOK)
	}))
	defer srv.Close()

	raw, err := newTestAdapter(t, srv.URL).Simulate(context.Background(), PathVerifyThreshold, models.ThresholdVerificationInput{})
	require.NoError(t, err)
	assert.Equal(t, handle.Hex(), raw)
}

func TestHTTPAdapter_CountRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/records/medication/count", r.URL.Path)
		_, _ = utils.WriteJSON(w, models.CountResponse{Count: 5}, http.StatusOK)
	}))
	defer srv.Close()

	count, err := newTestAdapter(t, srv.URL).CountRecords(context.Background(), models.KindMedication)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), count)
}

// ── Receipts ──

func TestHTTPAdapter_GetReceipt_Pending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/tx/"+testTxHash.Hex()+"/receipt", r.URL.Path)
		writeLedgerError(w, errors.New("receipt not found"), http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetReceipt(context.Background(), testTxHash)
	assert.ErrorIs(t, err, ErrReceiptPending)
}

func TestHTTPAdapter_WaitForReceipt(t *testing.T) {
	var hits atomic.Int32
	block := uint64(9)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			writeLedgerError(w, errors.New("receipt not found"), http.StatusNotFound)
			return
		}
		_, _ = utils.WriteJSON(w, models.Receipt{Hash: testTxHash, BlockNumber: &block}, http.StatusOK)
	}))
	defer srv.Close()

	receipt, err := newTestAdapter(t, srv.URL).WaitForReceipt(context.Background(), testTxHash)
	require.NoError(t, err)
	assert.True(t, receipt.Finalized())
	assert.Equal(t, int32(3), hits.Load())
}

func TestHTTPAdapter_WaitForReceipt_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeLedgerError(w, errors.New("receipt not found"), http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.finalityTimeout = 200 * time.Millisecond

	_, err := a.WaitForReceipt(context.Background(), testTxHash)
	assert.ErrorIs(t, err, ErrFinalityTimeout)
}

func TestHTTPAdapter_WaitForReceipt_PermanentError(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeLedgerError(w, errors.New("token expired"), http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).WaitForReceipt(context.Background(), testTxHash)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, int32(1), hits.Load())
}
