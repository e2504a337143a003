package ledger

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/models"
)

var (
	ErrUnknownEvent  = errors.New("unknown event")
	ErrEventMismatch = errors.New("log is not the expected event")
)

// EncodeEvent builds the log for event name emitted by contract. Arguments
// are given in ABI order, indexed and non-indexed interleaved as declared.
// Addresses are common.Address, uint256 values *big.Int, bytes32 [32]byte.
func EncodeEvent(contract common.Address, name string, args ...interface{}) (models.Log, error) {
	ev, ok := ABI.Events[name]
	if !ok {
		return models.Log{}, fmt.Errorf("%w: %s", ErrUnknownEvent, name)
	}
	if len(args) != len(ev.Inputs) {
		return models.Log{}, fmt.Errorf("%s takes %d arguments, got %d", name, len(ev.Inputs), len(args))
	}

	var (
		query  [][]interface{}
		values []interface{}
	)
	for i, input := range ev.Inputs {
		if input.Indexed {
			query = append(query, []interface{}{args[i]})
			continue
		}
		values = append(values, args[i])
	}

	topics := []common.Hash{ev.ID}
	if len(query) > 0 {
		indexed, err := abi.MakeTopics(query...)
		if err != nil {
			return models.Log{}, fmt.Errorf("encode %s topics: %w", name, err)
		}
		for _, t := range indexed {
			topics = append(topics, t[0])
		}
	}

	data, err := ev.Inputs.NonIndexed().Pack(values...)
	if err != nil {
		return models.Log{}, fmt.Errorf("encode %s data: %w", name, err)
	}
	if data == nil {
		// events with only indexed arguments still carry an empty data field
		data = []byte{}
	}

	return models.Log{Address: contract, Topics: topics, Data: data}, nil
}

// DecodeEvent unpacks log into a map keyed by argument name. It fails with
// ErrEventMismatch when topic0 is not the id of event name.
func DecodeEvent(name string, log models.Log) (map[string]interface{}, error) {
	ev, ok := ABI.Events[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, name)
	}
	if len(log.Topics) == 0 || log.Topics[0] != ev.ID {
		return nil, ErrEventMismatch
	}

	out := make(map[string]interface{}, len(ev.Inputs))
	if err := ev.Inputs.UnpackIntoMap(out, log.Data); err != nil {
		return nil, fmt.Errorf("decode %s data: %w", name, err)
	}

	var indexed abi.Arguments
	for _, input := range ev.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	if err := abi.ParseTopicsIntoMap(out, indexed, log.Topics[1:]); err != nil {
		return nil, fmt.Errorf("decode %s topics: %w", name, err)
	}

	return out, nil
}

// EventID is topic0 of event name.
func EventID(name string) common.Hash {
	return ABI.Events[name].ID
}

// ResultEvent is a decoded VerificationResult or ScoreThresholdVerified log.
type ResultEvent struct {
	Name          string
	User          common.Address
	RecordID      *big.Int
	IndicatorType uint8
	ResultHandle  common.Hash
}

// DecodeResultEvent decodes either event that carries a result handle.
func DecodeResultEvent(log models.Log) (ResultEvent, error) {
	for _, name := range []string{EventVerificationResult, EventScoreThresholdVerified} {
		fields, err := DecodeEvent(name, log)
		if errors.Is(err, ErrEventMismatch) {
			continue
		}
		if err != nil {
			return ResultEvent{}, err
		}

		ev := ResultEvent{Name: name}
		ev.User, _ = fields["user"].(common.Address)
		ev.RecordID, _ = fields["recordId"].(*big.Int)
		ev.IndicatorType, _ = fields["indicatorType"].(uint8)
		if h, ok := fields["resultHandle"].([32]byte); ok {
			ev.ResultHandle = h
		}
		return ev, nil
	}
	return ResultEvent{}, ErrEventMismatch
}
