package models

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// EncryptInputsRequest asks the relayer to encrypt Values, Values[i] in a
// domain of Bits[i] bits, for use by User against Contract.
type EncryptInputsRequest struct {
	Contract common.Address `json:"contractAddress"`
	User     common.Address `json:"userAddress"`
	Values   []uint64       `json:"values"`
	Bits     []uint8        `json:"bits"`
}

type EncryptInputsResponse struct {
	Handles    []common.Hash `json:"handles"`
	InputProof hexutil.Bytes `json:"inputProof"`
}

// Input returns the i-th handle paired with the batch proof.
func (r EncryptInputsResponse) Input(i int) ExternalInput {
	return ExternalInput{Handle: r.Handles[i], Proof: r.InputProof}
}

type HandleContractPair struct {
	Handle          common.Hash    `json:"handle"`
	ContractAddress common.Address `json:"contractAddress"`
}

// UserDecryptRequest carries a signed decryption grant and the handles it
// should reveal. The private half of the keypair never leaves the client.
type UserDecryptRequest struct {
	Handles           []HandleContractPair `json:"handles"`
	PublicKey         hexutil.Bytes        `json:"publicKey"`
	Signature         hexutil.Bytes        `json:"signature"`
	ContractAddresses []common.Address     `json:"contractAddresses"`
	UserAddress       common.Address       `json:"userAddress"`
	StartTimestamp    int64                `json:"startTimestamp"`
	DurationDays      int64                `json:"durationDays"`
}

// UserDecryptResponse maps every requested handle to its value sealed to the
// request's public key.
type UserDecryptResponse struct {
	Sealed map[common.Hash]hexutil.Bytes `json:"sealed"`
}
