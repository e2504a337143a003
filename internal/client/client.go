package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/TessVincent/prismhealth/internal/adapter"
	"github.com/TessVincent/prismhealth/internal/authz"
	"github.com/TessVincent/prismhealth/internal/fhe"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/session"
	"github.com/TessVincent/prismhealth/models"
)

// Client runs ledger operations for one account.
type Client struct {
	ledger  adapter.LedgerAdapter
	relayer adapter.RelayerAdapter
	guard   *session.Guard

	expectedProtocol uint64
	now              func() time.Time

	mu         sync.RWMutex
	signer     AccountSigner
	info       models.LedgerInfo
	authorizer *authz.Authorizer

	logger *logger.Logger
}

// New returns a client that is not connected yet; call Connect first.
func New(ledger adapter.LedgerAdapter, relayer adapter.RelayerAdapter, signer AccountSigner, expectedProtocol uint64, logger *logger.Logger) *Client {
	return &Client{
		ledger:           ledger,
		relayer:          relayer,
		guard:            session.NewGuard(context.Background()),
		expectedProtocol: expectedProtocol,
		now:              time.Now,
		signer:           signer,
		logger:           logger,
	}
}

// WithClock replaces the clock used for login challenges and grants.
func (c *Client) WithClock(now func() time.Time) *Client {
	c.now = now
	return c
}

// Connect checks that the ledger speaks the expected confidential protocol,
// learns its chain, contract and oracle domain, and logs the account in.
// On a protocol mismatch nothing is signed.
func (c *Client) Connect(ctx context.Context) (models.LedgerInfo, error) {
	log := c.logger.With().Str("func", "Client.Connect").Logger()

	proto, err := c.ledger.Protocol(ctx)
	if err != nil {
		return models.LedgerInfo{}, fmt.Errorf("discover protocol: %w", err)
	}
	if proto.ProtocolID != c.expectedProtocol {
		log.Error().Uint64("ledger", proto.ProtocolID).Uint64("client", c.expectedProtocol).Msg("confidential protocol mismatch")
		return models.LedgerInfo{}, models.Errorf(models.ErrUnsupportedProtocol, "ledger speaks %d, client speaks %d", proto.ProtocolID, c.expectedProtocol)
	}

	info, err := c.ledger.LedgerInfo(ctx)
	if err != nil {
		return models.LedgerInfo{}, fmt.Errorf("read ledger info: %w", err)
	}

	c.mu.RLock()
	signer := c.signer
	c.mu.RUnlock()

	issuedAt := c.now().Unix()
	sig, err := signer.SignText(ctx, models.LoginChallenge(signer.Address(), info.ChainID, issuedAt))
	if err != nil {
		return models.LedgerInfo{}, fmt.Errorf("sign login challenge: %w", err)
	}
	if _, err = c.ledger.Login(ctx, models.LoginRequest{Address: signer.Address(), IssuedAt: issuedAt, Signature: sig}); err != nil {
		return models.LedgerInfo{}, fmt.Errorf("login: %w", err)
	}

	c.mu.Lock()
	c.info = info
	c.authorizer = authz.NewAuthorizer(info.Oracle, signer, c.logger).WithClock(c.now)
	c.mu.Unlock()

	c.guard.Switch(session.Identity{ChainID: info.ChainID, Account: signer.Address()})

	log.Info().
		Str("account", signer.Address().Hex()).
		Uint64("chain_id", info.ChainID).
		Str("contract", info.ContractAddress.Hex()).
		Msg("connected to ledger")
	return info, nil
}

// SwitchAccount replaces the signing account and reconnects. Work still
// running for the previous account is cancelled and its results discarded.
func (c *Client) SwitchAccount(ctx context.Context, signer AccountSigner) (models.LedgerInfo, error) {
	c.mu.Lock()
	c.signer = signer
	c.mu.Unlock()
	c.ledger.SetToken("")
	return c.Connect(ctx)
}

// Close cancels outstanding work.
func (c *Client) Close() {
	c.guard.Close()
}

// Info is what Connect learned about the ledger.
func (c *Client) Info() models.LedgerInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.info
}

// encrypt has the relayer encrypt values for the current account, each in
// the domain of the matching width.
func (c *Client) encrypt(ctx context.Context, id session.Identity, values []uint64, bits []uint8) (models.EncryptInputsResponse, error) {
	resp, err := c.relayer.EncryptInputs(ctx, models.EncryptInputsRequest{
		Contract: c.Info().ContractAddress,
		User:     id.Account,
		Values:   values,
		Bits:     bits,
	})
	if err != nil {
		return models.EncryptInputsResponse{}, fmt.Errorf("encrypt inputs: %w", err)
	}
	if len(resp.Handles) != len(values) {
		return models.EncryptInputsResponse{}, fmt.Errorf("%w: %d of %d", ErrShortEncryption, len(resp.Handles), len(values))
	}
	return resp, nil
}

// decrypt opens handles in one oracle round trip under a fresh grant.
func (c *Client) decrypt(ctx context.Context, handles ...fhe.Handle) (fhe.Values, error) {
	c.mu.RLock()
	authorizer := c.authorizer
	c.mu.RUnlock()
	if authorizer == nil {
		return nil, ErrNotConnected
	}

	contract := c.Info().ContractAddress
	pairs := make([]models.HandleContractPair, len(handles))
	for i, h := range handles {
		pairs[i] = models.HandleContractPair{Handle: h, ContractAddress: contract}
	}
	return authorizer.Decrypt(ctx, c.relayer, []string{contract.Hex()}, pairs)
}

// settle waits for a submitted call to be sealed. Simulated calls have no
// receipt.
func settle[T any](ctx context.Context, c *Client, sub models.Submission[T]) (models.Receipt, error) {
	if sub.Simulated {
		return models.Receipt{}, nil
	}
	receipt, err := c.ledger.WaitForReceipt(ctx, sub.TxHash)
	if err != nil {
		return models.Receipt{}, err
	}
	if receipt.Status != models.TxStatusSuccess {
		return receipt, fmt.Errorf("transaction %s failed", sub.TxHash.Hex())
	}
	return receipt, nil
}
