// Package resolver recovers the result handle of a verification call after
// it has been submitted. The handle is read from the sealed receipt's result
// log; when the log is missing the call is simulated once and the handle it
// would return is used instead. Both paths feed the same normalization.
package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/internal/ledger"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/models"
)

// Step names the stage of resolution that failed.
type Step string

const (
	StepScan      Step = "scan receipt logs"
	StepSimulate  Step = "simulate call"
	StepNormalize Step = "normalize handle"
)

// Error is a handle resolution failure. It wraps one of the
// models.ErrHandleResolution sentinels.
type Error struct {
	Step Step
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("resolve result handle: %s: %v", e.Step, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// SimulateFunc re-runs the submitted call without committing and returns
// the raw result handle.
type SimulateFunc func(ctx context.Context) (string, error)

// Resolve returns the result handle of the call that produced receipt.
// Only a sealed receipt is scanned. simulate is called at most once and may
// be nil, in which case a missing log is final.
func Resolve(ctx context.Context, receipt models.Receipt, simulate SimulateFunc) (common.Hash, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "resolver.Resolve").
		Str("tx_hash", receipt.Hash.Hex()).
		Logger()

	if receipt.Finalized() {
		if raw, ok := scan(receipt.Logs); ok {
			return normalizeStep(raw)
		}
	}

	if simulate == nil {
		return common.Hash{}, &Error{Step: StepScan, Err: models.ErrNoResultLog}
	}

	log.Warn().Bool("finalized", receipt.Finalized()).Msg("no result log, falling back to simulation")
	raw, err := simulate(ctx)
	if err != nil {
		return common.Hash{}, &Error{Step: StepSimulate, Err: fmt.Errorf("%w: %w", models.ErrSimulationFailed, err)}
	}
	return normalizeStep(raw)
}

// scan returns the result handle of the first result log in logs.
func scan(logs []models.Log) (string, bool) {
	for _, l := range logs {
		ev, err := ledger.DecodeResultEvent(l)
		if err != nil {
			// not a result log, or one whose data does not decode
			continue
		}
		return ev.ResultHandle.Hex(), true
	}
	return "", false
}

func normalizeStep(raw string) (common.Hash, error) {
	h, err := Normalize(raw)
	if err != nil {
		return common.Hash{}, &Error{Step: StepNormalize, Err: err}
	}
	return h, nil
}

// Normalize turns a raw handle string into a handle: surrounding space is
// trimmed, a 0x prefix is optional, shorter values are left-padded to 64 hex
// digits and longer ones truncated to 64. Non-hex and all-zero values are
// rejected.
func Normalize(raw string) (common.Hash, error) {
	s := strings.TrimSpace(raw)
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	if s == "" {
		return common.Hash{}, models.Errorf(models.ErrMalformedHandle, "empty handle")
	}

	if len(s) < 2*common.HashLength {
		s = strings.Repeat("0", 2*common.HashLength-len(s)) + s
	} else if len(s) > 2*common.HashLength {
		s = s[:2*common.HashLength]
	}

	for _, c := range s {
		if !isHexDigit(c) {
			return common.Hash{}, models.Errorf(models.ErrMalformedHandle, "%q is not hex", raw)
		}
	}

	h := common.HexToHash(s)
	if h == (common.Hash{}) {
		return common.Hash{}, models.ErrZeroHandle
	}
	return h, nil
}

func isHexDigit(c rune) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
