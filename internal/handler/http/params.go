package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-chi/chi/v5"

	"github.com/TessVincent/prismhealth/internal/utils"
	"github.com/TessVincent/prismhealth/models"
)

// ownerFromRequest returns the owner the auth middleware stored. Routes behind
// h.auth always have one.
func ownerFromRequest(r *http.Request) (common.Address, error) {
	owner, ok := utils.GetOwnerFromContext(r.Context())
	if !ok {
		return common.Address{}, ErrEmptyToken
	}
	return owner, nil
}

// callOptions reads ?simulate=true. Absent means a committing call.
func callOptions(r *http.Request) (models.CallOptions, error) {
	raw := r.URL.Query().Get("simulate")
	if raw == "" {
		return models.CallOptions{}, nil
	}
	simulate, err := strconv.ParseBool(raw)
	if err != nil {
		return models.CallOptions{}, fmt.Errorf("%w: simulate=%q", ErrInvalidQueryParam, raw)
	}
	return models.CallOptions{Simulate: simulate}, nil
}

func uintParam(r *http.Request, name string) (uint64, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPathParam, name, raw)
	}
	return v, nil
}

func hashParam(r *http.Request, name string) (common.Hash, error) {
	raw := chi.URLParam(r, name)
	b, err := hexutil.Decode(raw)
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("%w: %s=%q", ErrInvalidPathParam, name, raw)
	}
	return common.BytesToHash(b), nil
}

// decodeBody decodes the JSON body into dst, tagging failures as validation
// errors.
func decodeBody(r *http.Request, dst any) error {
	if err := utils.DecodeJSON(r.Body, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// submitted answers a mutating call: 200 for a simulation, 202 once the
// transaction is committed and awaits sealing.
func submitted[T any](w http.ResponseWriter, sub models.Submission[T]) {
	status := http.StatusAccepted
	if sub.Simulated {
		status = http.StatusOK
	}
	utils.WriteJSON(w, sub, status)
}

// mutatingCall collects what every state-changing endpoint needs.
func mutatingCall(r *http.Request) (common.Address, models.CallOptions, error) {
	owner, err := ownerFromRequest(r)
	if err != nil {
		return common.Address{}, models.CallOptions{}, err
	}
	opts, err := callOptions(r)
	if err != nil {
		return common.Address{}, models.CallOptions{}, err
	}
	return owner, opts, nil
}
