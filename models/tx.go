package models

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	TxStatusFailed  uint64 = 0
	TxStatusSuccess uint64 = 1
)

// Log is one event emitted by a ledger call, encoded exactly like an EVM log:
// Topics[0] is the event id, indexed arguments follow, the rest is ABI data.
type Log struct {
	Address     common.Address `json:"address"`
	Topics      []common.Hash  `json:"topics"`
	Data        hexutil.Bytes  `json:"data"`
	TxHash      common.Hash    `json:"transactionHash"`
	Index       uint           `json:"logIndex"`
	BlockNumber *uint64        `json:"blockNumber"`
}

// Transaction is the ledger-side trace of one committed mutating call.
type Transaction struct {
	Hash        common.Hash    `json:"transactionHash"`
	From        common.Address `json:"from"`
	To          common.Address `json:"to"`
	Method      string         `json:"method"`
	Status      uint64         `json:"status"`
	BlockNumber *uint64        `json:"blockNumber"`
	CreatedAt   int64          `json:"createdAt"`
	Logs        []Log          `json:"logs"`
}

// Receipt is what a client polls for. A nil BlockNumber means the
// transaction has not been sealed yet.
type Receipt = Transaction

// Finalized reports whether the transaction has been sealed into a block.
func (t Transaction) Finalized() bool {
	return t.BlockNumber != nil
}

// CallOptions tune a mutating ledger call.
type CallOptions struct {
	// Simulate runs the call without committing: nothing is stored, no event
	// is emitted and no decryption right is granted.
	Simulate bool
}

// Submission is the answer to a mutating call.
type Submission[T any] struct {
	TxHash    common.Hash `json:"txHash"`
	Simulated bool        `json:"simulated,omitempty"`
	Result    T           `json:"result"`
}

// Block is produced by the sealer.
type Block struct {
	Number       uint64 `json:"number"`
	Transactions int    `json:"transactions"`
	SealedAt     int64  `json:"sealedAt"`
}
