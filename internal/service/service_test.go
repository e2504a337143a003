package service

import (
	"context"
	"crypto/ecdsa"
	"crypto/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/nacl/box"

	"github.com/TessVincent/prismhealth/internal/config"
	kc "github.com/TessVincent/prismhealth/internal/crypto"
	"github.com/TessVincent/prismhealth/internal/fhe"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/store"
	"github.com/TessVincent/prismhealth/models"
)

var testContract = common.HexToAddress("0x00000000000000000000000000000000000000c0")

const grantStart = int64(1_700_000_000)

// ledgerFixture is a full ledger over a temporary sqlite file and a real
// coprocessor, with one owner able to encrypt inputs and decrypt results.
type ledgerFixture struct {
	storages    *store.Storages
	coprocessor *fhe.Coprocessor

	records RecordService
	scores  ScoreService
	proofs  ProofService

	key   *ecdsa.PrivateKey
	owner common.Address
	pub   *[32]byte
	priv  *[32]byte
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	ctx := context.Background()

	db, err := store.NewDB(ctx, config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "ledger.db"),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	storages := store.NewStorages(db)
	domain := models.OracleDomain{Name: "Decryption", Version: "1", ChainID: 31337, VerifyingContract: common.HexToAddress("0x00000000000000000000000000000000000000d0")}
	coprocessor := fhe.NewCoprocessor(storages.Engine, kc.NewKeyChain(), config.Engine{Secret: "engine-secret", InputProofKey: "proof-key"}, domain, logger.Nop())
	coprocessor.WithClock(func() time.Time { return time.Unix(grantStart, 0) })

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	pub, priv, err := box.GenerateKey(rand.Reader)
	require.NoError(t, err)

	return &ledgerFixture{
		storages:    storages,
		coprocessor: coprocessor,
		records:     NewRecordService(storages, coprocessor, testContract, logger.Nop()),
		scores:      NewScoreService(storages, coprocessor, testContract, logger.Nop()),
		proofs:      NewProofService(storages, coprocessor, testContract, logger.Nop()),
		key:         key,
		owner:       crypto.PubkeyToAddress(key.PublicKey),
		pub:         pub,
		priv:        priv,
	}
}

// encrypt encrypts values for the owner as one batch.
func (f *ledgerFixture) encrypt(t *testing.T, typ fhe.Type, values ...uint64) []models.ExternalInput {
	t.Helper()
	types := make([]fhe.Type, len(values))
	for i := range types {
		types[i] = typ
	}

	batch, err := f.coprocessor.EncryptInputs(context.Background(), testContract, f.owner, values, types)
	require.NoError(t, err)

	inputs := make([]models.ExternalInput, len(batch.Handles))
	for i, h := range batch.Handles {
		inputs[i] = models.ExternalInput{Handle: h, Proof: batch.Proof}
	}
	return inputs
}

func (f *ledgerFixture) addHealth(t *testing.T, v models.HealthValues) uint64 {
	t.Helper()
	in := f.encrypt(t, fhe.Uint16, uint64(v.SystolicBP), uint64(v.DiastolicBP), uint64(v.BloodGlucose), uint64(v.HeartRate), uint64(v.Weight))
	sub, err := f.records.AddHealthRecord(context.Background(), f.owner, models.HealthRecordInput{
		SystolicBP:   in[0],
		DiastolicBP:  in[1],
		BloodGlucose: in[2],
		HeartRate:    in[3],
		Weight:       in[4],
	}, models.CallOptions{})
	require.NoError(t, err)
	return sub.Result
}

// decrypt opens handles through the user decryption oracle.
func (f *ledgerFixture) decrypt(t *testing.T, handles ...common.Hash) []uint64 {
	t.Helper()
	grant := fhe.DecryptionRequest{PublicKey: f.pub[:], Contracts: []common.Address{testContract}, StartTimestamp: grantStart, DurationDays: 1}
	digest, err := grant.Hash(f.coprocessor.Domain())
	require.NoError(t, err)
	sig, err := crypto.Sign(digest, f.key)
	require.NoError(t, err)

	pairs := make([]models.HandleContractPair, len(handles))
	for i, h := range handles {
		pairs[i] = models.HandleContractPair{Handle: h, ContractAddress: testContract}
	}
	resp, err := f.coprocessor.UserDecrypt(context.Background(), models.UserDecryptRequest{
		Handles:           pairs,
		PublicKey:         f.pub[:],
		Signature:         sig,
		ContractAddresses: grant.Contracts,
		UserAddress:       f.owner,
		StartTimestamp:    grantStart,
		DurationDays:      1,
	})
	require.NoError(t, err)

	out := make([]uint64, len(handles))
	for i, h := range handles {
		v, err := fhe.OpenSealed(resp.Sealed[h], f.pub, f.priv)
		require.NoError(t, err)
		out[i] = v.Value
	}
	return out
}
