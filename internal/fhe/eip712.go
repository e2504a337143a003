package fhe

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/TessVincent/prismhealth/models"
)

// DecryptionPrimaryType is the EIP-712 primary type of a decryption grant.
const DecryptionPrimaryType = "UserDecryptRequestVerification"

// SecondsPerDay converts grant durations.
const SecondsPerDay = 86400

// Name and version of the decryption oracle's EIP-712 domain.
const (
	DomainName    = "Decryption"
	DomainVersion = "1"
)

// NewDomain returns the oracle domain of a ledger on chainID.
func NewDomain(chainID uint64, verifyingContract common.Address) models.OracleDomain {
	return models.OracleDomain{
		Name:              DomainName,
		Version:           DomainVersion,
		ChainID:           chainID,
		VerifyingContract: verifyingContract,
	}
}

// DecryptionRequest is the signed part of a decryption grant. Contracts are
// hashed in the order given; callers sort them first.
type DecryptionRequest struct {
	PublicKey      []byte
	Contracts      []common.Address
	StartTimestamp int64
	DurationDays   int64
}

// TypedData builds the EIP-712 message for r under domain.
func (r DecryptionRequest) TypedData(domain models.OracleDomain) apitypes.TypedData {
	contracts := make([]interface{}, len(r.Contracts))
	for i, c := range r.Contracts {
		contracts[i] = c.Hex()
	}

	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": {
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			DecryptionPrimaryType: {
				{Name: "publicKey", Type: "bytes"},
				{Name: "contractAddresses", Type: "address[]"},
				{Name: "startTimestamp", Type: "uint256"},
				{Name: "durationDays", Type: "uint256"},
			},
		},
		PrimaryType: DecryptionPrimaryType,
		Domain: apitypes.TypedDataDomain{
			Name:              domain.Name,
			Version:           domain.Version,
			ChainId:           (*math.HexOrDecimal256)(new(big.Int).SetUint64(domain.ChainID)),
			VerifyingContract: domain.VerifyingContract.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"publicKey":         hexutil.Encode(r.PublicKey),
			"contractAddresses": contracts,
			"startTimestamp":    strconv.FormatInt(r.StartTimestamp, 10),
			"durationDays":      strconv.FormatInt(r.DurationDays, 10),
		},
	}
}

// Hash is the EIP-712 digest a signer signs.
func (r DecryptionRequest) Hash(domain models.OracleDomain) ([]byte, error) {
	hash, _, err := apitypes.TypedDataAndHash(r.TypedData(domain))
	if err != nil {
		return nil, models.Errorf(models.ErrMalformedGrant, "hash typed data: %v", err)
	}
	return hash, nil
}

// ValidAt reports whether now falls in [start, start+days*86400).
func (r DecryptionRequest) ValidAt(now int64) bool {
	return now >= r.StartTimestamp && now < r.StartTimestamp+r.DurationDays*SecondsPerDay
}

// RecoverSigner returns the address that produced sig over hash. Both the
// raw 0/1 and the wallet 27/28 recovery ids are accepted.
func RecoverSigner(hash, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("%w: signature is %d bytes", models.ErrBadSignature, len(sig))
	}

	normalized := make([]byte, len(sig))
	copy(normalized, sig)
	if normalized[crypto.RecoveryIDOffset] >= 27 {
		normalized[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(hash, normalized)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", models.ErrBadSignature, err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
