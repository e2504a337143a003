package models

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// OracleDomain is the EIP-712 domain decryption grants are signed under.
type OracleDomain struct {
	Name              string         `json:"name"`
	Version           string         `json:"version"`
	ChainID           uint64         `json:"chainId"`
	VerifyingContract common.Address `json:"verifyingContract"`
}

// LedgerInfo is what a client learns about a ledger node before using it.
type LedgerInfo struct {
	ChainID         uint64         `json:"chainId"`
	ContractAddress common.Address `json:"contractAddress"`
	ProtocolID      uint64         `json:"confidentialProtocolId"`
	Oracle          OracleDomain   `json:"oracle"`
	Build           AppBuildInfo   `json:"build"`
}

// ProtocolInfo answers the capability-discovery call.
type ProtocolInfo struct {
	ProtocolID uint64 `json:"confidentialProtocolId"`
}

// LoginRequest proves control of Address by signing LoginChallenge.
type LoginRequest struct {
	Address   common.Address `json:"address"`
	IssuedAt  int64          `json:"issuedAt"`
	Signature hexutil.Bytes  `json:"signature"`
}

// LoginChallenge is the text a client signs (as an EIP-191 personal message)
// to open a session.
func LoginChallenge(address common.Address, chainID uint64, issuedAt int64) string {
	return fmt.Sprintf("PrismHealth login\naddress: %s\nchain: %d\nissued: %d", address.Hex(), chainID, issuedAt)
}

// LoginResponse carries the session token; it is also returned in the
// Authorization header.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type CountResponse struct {
	Count uint64 `json:"count"`
}
