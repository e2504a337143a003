package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-resty/resty/v2"

	"github.com/TessVincent/prismhealth/internal/config"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/utils"
	"github.com/TessVincent/prismhealth/models"
)

// Ledger API paths.
const (
	PathVerifyRange     = "/api/v1/verify/range"
	PathVerifyThreshold = "/api/v1/verify/threshold"

	pathInfo        = "/api/v1/info"
	pathProtocol    = "/api/v1/protocol"
	pathLogin       = "/api/v1/auth/login"
	pathRecords     = "/api/v1/records/"
	pathScore       = "/api/v1/score"
	pathScoreCalc   = "/api/v1/score/compute"
	pathProofs      = "/api/v1/proofs"
	pathTx          = "/api/v1/tx/"
	pathInputs      = "/relayer/v1/inputs"
	pathUserDecrypt = "/relayer/v1/user-decrypt"
)

// HTTPAdapter implements LedgerAdapter and RelayerAdapter over resty.
//
// Reads and relayer calls go through a client that retries transport errors
// and 5xx answers. Mutating ledger calls are sent exactly once: a 5xx after
// commit must not turn into a second transaction.
type HTTPAdapter struct {
	reads  *utils.HTTPClient
	writes *utils.HTTPClient

	mu    sync.RWMutex
	token string

	finalityTimeout time.Duration
	pollInterval    time.Duration

	logger *logger.Logger
}

// NewHTTPAdapter validates cfg.ServerAddress and builds both clients.
func NewHTTPAdapter(cfg config.ClientConfig, logger *logger.Logger) (*HTTPAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &HTTPAdapter{
		reads:           utils.NewHTTPClient(baseURL, cfg.RequestTimeout, cfg.RetryCount),
		writes:          utils.NewHTTPClient(baseURL, cfg.RequestTimeout, 0),
		finalityTimeout: cfg.FinalityTimeout,
		pollInterval:    250 * time.Millisecond,
		logger:          logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token, whitespace-trimmed, for authenticated requests.
func (a *HTTPAdapter) SetToken(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = strings.TrimSpace(token)
}

func (a *HTTPAdapter) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

func (a *HTTPAdapter) read(ctx context.Context) *resty.Request {
	return a.authed(a.reads.R().SetContext(ctx))
}

func (a *HTTPAdapter) write(ctx context.Context, opts models.CallOptions) *resty.Request {
	r := a.authed(a.writes.R().SetContext(ctx)).SetHeader("Content-Type", "application/json")
	if opts.Simulate {
		r.SetQueryParam("simulate", "true")
	}
	return r
}

func (a *HTTPAdapter) authed(r *resty.Request) *resty.Request {
	if token := a.Token(); token != "" {
		r.SetAuthToken(token)
	}
	return r
}

// call executes r and decodes a 2xx JSON body into T.
func call[T any](r *resty.Request, method, path string) (T, error) {
	var out T
	resp, err := r.SetResult(&out).Execute(method, path)
	if err != nil {
		return out, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}
	return out, nil
}

// ── Info and auth ──

func (a *HTTPAdapter) LedgerInfo(ctx context.Context) (models.LedgerInfo, error) {
	return call[models.LedgerInfo](a.reads.R().SetContext(ctx), http.MethodGet, pathInfo)
}

func (a *HTTPAdapter) Protocol(ctx context.Context) (models.ProtocolInfo, error) {
	return call[models.ProtocolInfo](a.reads.R().SetContext(ctx), http.MethodGet, pathProtocol)
}

// Login posts the signed challenge. The token is taken from the
// Authorization header and stored via SetToken.
func (a *HTTPAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var out models.LoginResponse
	resp, err := a.reads.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post(pathLogin)
	if err != nil {
		return out, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrMissingAuthHeader, err)
	}

	a.SetToken(token)
	return out, nil
}

// ── Records ──

func (a *HTTPAdapter) AddHealthRecord(ctx context.Context, in models.HealthRecordInput, opts models.CallOptions) (models.Submission[uint64], error) {
	return call[models.Submission[uint64]](a.write(ctx, opts).SetBody(in), http.MethodPost, pathRecords+string(models.KindHealth))
}

func (a *HTTPAdapter) AddMedicationRecord(ctx context.Context, in models.MedicationRecordInput, opts models.CallOptions) (models.Submission[uint64], error) {
	return call[models.Submission[uint64]](a.write(ctx, opts).SetBody(in), http.MethodPost, pathRecords+string(models.KindMedication))
}

func (a *HTTPAdapter) AddExerciseRecord(ctx context.Context, in models.ExerciseRecordInput, opts models.CallOptions) (models.Submission[uint64], error) {
	return call[models.Submission[uint64]](a.write(ctx, opts).SetBody(in), http.MethodPost, pathRecords+string(models.KindExercise))
}

func (a *HTTPAdapter) DeleteHealthRecord(ctx context.Context, id uint64, opts models.CallOptions) (models.Submission[uint64], error) {
	return call[models.Submission[uint64]](a.write(ctx, opts), http.MethodDelete, recordPath(models.KindHealth, id))
}

func (a *HTTPAdapter) GetHealthRecord(ctx context.Context, id uint64) (models.HealthRecord, error) {
	return call[models.HealthRecord](a.read(ctx), http.MethodGet, recordPath(models.KindHealth, id))
}

func (a *HTTPAdapter) GetMedicationRecord(ctx context.Context, id uint64) (models.MedicationRecord, error) {
	return call[models.MedicationRecord](a.read(ctx), http.MethodGet, recordPath(models.KindMedication, id))
}

func (a *HTTPAdapter) GetExerciseRecord(ctx context.Context, id uint64) (models.ExerciseRecord, error) {
	return call[models.ExerciseRecord](a.read(ctx), http.MethodGet, recordPath(models.KindExercise, id))
}

func (a *HTTPAdapter) CountRecords(ctx context.Context, kind models.RecordKind) (uint64, error) {
	resp, err := call[models.CountResponse](a.read(ctx), http.MethodGet, pathRecords+url.PathEscape(string(kind))+"/count")
	return resp.Count, err
}

func recordPath(kind models.RecordKind, id uint64) string {
	return pathRecords + string(kind) + "/" + strconv.FormatUint(id, 10)
}

// ── Score and verification ──

func (a *HTTPAdapter) ComputeScore(ctx context.Context, opts models.CallOptions) (models.Submission[models.HealthScore], error) {
	return call[models.Submission[models.HealthScore]](a.write(ctx, opts), http.MethodPost, pathScoreCalc)
}

func (a *HTTPAdapter) StoreScore(ctx context.Context, opts models.CallOptions) (models.Submission[models.HealthScore], error) {
	return call[models.Submission[models.HealthScore]](a.write(ctx, opts), http.MethodPost, pathScore)
}

func (a *HTTPAdapter) GetScore(ctx context.Context) (models.HealthScore, error) {
	return call[models.HealthScore](a.read(ctx), http.MethodGet, pathScore)
}

func (a *HTTPAdapter) VerifyInRange(ctx context.Context, in models.RangeVerificationInput, opts models.CallOptions) (models.Submission[common.Hash], error) {
	return call[models.Submission[common.Hash]](a.write(ctx, opts).SetBody(in), http.MethodPost, PathVerifyRange)
}

func (a *HTTPAdapter) VerifyScoreThreshold(ctx context.Context, in models.ThresholdVerificationInput, opts models.CallOptions) (models.Submission[common.Hash], error) {
	return call[models.Submission[common.Hash]](a.write(ctx, opts).SetBody(in), http.MethodPost, PathVerifyThreshold)
}

// Simulate posts body to path with simulate=true. A JSON string result is
// unquoted; any other JSON value is returned verbatim.
func (a *HTTPAdapter) Simulate(ctx context.Context, path string, body any) (string, error) {
	sub, err := call[models.Submission[json.RawMessage]](a.write(ctx, models.CallOptions{Simulate: true}).SetBody(body), http.MethodPost, path)
	if err != nil {
		return "", err
	}
	if !sub.Simulated {
		return "", fmt.Errorf("%s: ledger committed a simulated call", path)
	}

	var s string
	if err = json.Unmarshal(sub.Result, &s); err == nil {
		return s, nil
	}
	return string(sub.Result), nil
}

// ── Proofs ──

func (a *HTTPAdapter) GenerateProof(ctx context.Context, in models.ProofInput, opts models.CallOptions) (models.Submission[uint64], error) {
	return call[models.Submission[uint64]](a.write(ctx, opts).SetBody(in), http.MethodPost, pathProofs)
}

func (a *HTTPAdapter) GetProof(ctx context.Context, id uint64) (models.VerificationProof, error) {
	return call[models.VerificationProof](a.read(ctx), http.MethodGet, pathProofs+"/"+strconv.FormatUint(id, 10))
}

func (a *HTTPAdapter) CountProofs(ctx context.Context) (uint64, error) {
	resp, err := call[models.CountResponse](a.read(ctx), http.MethodGet, pathProofs+"/count")
	return resp.Count, err
}

// ── Receipts ──

func (a *HTTPAdapter) GetReceipt(ctx context.Context, hash common.Hash) (models.Receipt, error) {
	receipt, err := call[models.Receipt](a.read(ctx), http.MethodGet, pathTx+hash.Hex()+"/receipt")
	if errors.Is(err, ErrNotFound) {
		return models.Receipt{}, fmt.Errorf("%w: %s", ErrReceiptPending, hash.Hex())
	}
	return receipt, err
}

func (a *HTTPAdapter) WaitForReceipt(ctx context.Context, hash common.Hash) (models.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, a.finalityTimeout)
	defer cancel()

	log := a.logger.With().Str("func", "HTTPAdapter.WaitForReceipt").Str("tx_hash", hash.Hex()).Logger()

	var receipt models.Receipt
	operation := func() error {
		r, err := a.GetReceipt(ctx, hash)
		if errors.Is(err, ErrReceiptPending) {
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		receipt = r
		return nil
	}
	notify := func(err error, next time.Duration) {
		log.Debug().Err(err).Dur("next", next).Msg("receipt not ready")
	}

	policy := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(a.pollInterval),
		backoff.WithMaxInterval(2*time.Second),
		backoff.WithMaxElapsedTime(a.finalityTimeout),
	)
	if err := backoff.RetryNotify(operation, backoff.WithContext(policy, ctx), notify); err != nil {
		if errors.Is(err, ErrReceiptPending) || ctx.Err() != nil {
			return models.Receipt{}, fmt.Errorf("%w: %s after %s", ErrFinalityTimeout, hash.Hex(), a.finalityTimeout)
		}
		return models.Receipt{}, err
	}
	return receipt, nil
}

// ── Relayer ──

func (a *HTTPAdapter) EncryptInputs(ctx context.Context, req models.EncryptInputsRequest) (models.EncryptInputsResponse, error) {
	r := a.reads.R().SetContext(ctx).SetHeader("Content-Type", "application/json").SetBody(req)
	return call[models.EncryptInputsResponse](r, http.MethodPost, pathInputs)
}

func (a *HTTPAdapter) UserDecrypt(ctx context.Context, req models.UserDecryptRequest) (models.UserDecryptResponse, error) {
	r := a.reads.R().SetContext(ctx).SetHeader("Content-Type", "application/json").SetBody(req)
	return call[models.UserDecryptResponse](r, http.MethodPost, pathUserDecrypt)
}
