package client

import "errors"

var (
	ErrNotConnected    = errors.New("client is not connected to a ledger")
	ErrShortEncryption = errors.New("relayer returned fewer handles than values")
)
