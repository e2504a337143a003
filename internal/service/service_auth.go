package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts"

	"github.com/TessVincent/prismhealth/internal/config"
	"github.com/TessVincent/prismhealth/internal/fhe"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/utils"
	"github.com/TessVincent/prismhealth/internal/validators"
	"github.com/TessVincent/prismhealth/models"
)

// authService is the concrete implementation of AuthService.
// A session is opened by signing a login challenge with the owner key; the
// ledger answers with a JWT whose subject is the owner address.
type authService struct {
	// chainID is bound into every login challenge.
	chainID uint64

	// challengeWindow is how far issuedAt may be from the ledger clock.
	challengeWindow time.Duration

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now       func() time.Time
	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		chainID:         cfg.ChainID,
		challengeWindow: cfg.ChallengeWindow,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		now:             time.Now,
		validator:       validators.NewLedgerValidator(),
		logger:          logger,
	}
}

// Login verifies an EIP-191 signature over the login challenge and issues a
// session token for the signing address.
//
// Returns the token or:
//   - ErrInvalidDataProvided for a zero address or an empty signature.
//   - ErrChallengeExpired if issuedAt is further than the challenge window
//     from the ledger clock.
//   - ErrChallengeSignature if the signature does not recover to req.Address.
//   - ErrTokenCreationFailed if JWT generation fails.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	skew := a.now().Sub(time.Unix(req.IssuedAt, 0))
	if skew < 0 {
		skew = -skew
	}
	if skew > a.challengeWindow {
		log.Warn().Str("address", req.Address.Hex()).Int64("issued_at", req.IssuedAt).Msg("stale login challenge")
		return models.Token{}, ErrChallengeExpired
	}

	challenge := models.LoginChallenge(req.Address, a.chainID, req.IssuedAt)
	signer, err := fhe.RecoverSigner(accounts.TextHash([]byte(challenge)), req.Signature)
	if err != nil || signer != req.Address {
		log.Warn().Str("address", req.Address.Hex()).Msg("login signature does not match address")
		return models.Token{}, ErrChallengeSignature
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, req.Address, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("owner", req.Address.Hex()).Msg("session opened")
	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, non-address
// subject) is normalised to ErrTokenIsExpiredOrInvalid so that callers do not
// need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
