package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TessVincent/prismhealth/internal/fhe"
	"github.com/TessVincent/prismhealth/models"
)

func TestEngineStore_PutCiphertext_Idempotent(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewEngineStore(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ciphertexts (handle,type,sealed) VALUES ($1,$2,$3) ON CONFLICT (handle) DO NOTHING")).
		WithArgs(handleA, int(fhe.Uint16), []byte("sealed")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.PutCiphertext(context.Background(), fhe.Ciphertext{Handle: handleA, Type: fhe.Uint16, Sealed: []byte("sealed")})
	assert.NoError(t, err)
}

func TestEngineStore_GetCiphertext(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewEngineStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT type, sealed FROM ciphertexts WHERE handle = $1")).
		WithArgs(handleA).
		WillReturnRows(sqlmock.NewRows([]string{"type", "sealed"}).AddRow(int64(fhe.Uint8), []byte("x")))

	ct, err := s.GetCiphertext(context.Background(), handleA)
	require.NoError(t, err)
	assert.Equal(t, fhe.Uint8, ct.Type)
	assert.Equal(t, handleA, ct.Handle)
}

func TestEngineStore_GetCiphertext_Unknown(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewEngineStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM ciphertexts")).
		WillReturnRows(sqlmock.NewRows([]string{"type", "sealed"}))

	_, err := s.GetCiphertext(context.Background(), handleA)
	assert.ErrorIs(t, err, models.ErrUnknownHandle)
	assert.ErrorIs(t, err, models.ErrAccess)
}

func TestEngineStore_Grant_AllInOneTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewEngineStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO acl_entries (handle,account) VALUES ($1,$2),($3,$4) ON CONFLICT (handle, account) DO NOTHING")).
		WithArgs(handleA, testOwner, handleB, testOwner).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := s.Grant(context.Background(), []fhe.Grant{{Handle: handleA, Account: testOwner}, {Handle: handleB, Account: testOwner}})
	assert.NoError(t, err)
}

func TestEngineStore_Grant_FailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewEngineStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO acl_entries")).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := s.Grant(context.Background(), []fhe.Grant{{Handle: handleA, Account: testOwner}})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestEngineStore_IsAllowed(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewEngineStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM acl_entries WHERE (handle = $1 AND account = $2)")).
		WithArgs(handleA, testOwner).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	ok, err := s.IsAllowed(context.Background(), handleA, testOwner)
	require.NoError(t, err)
	assert.True(t, ok)
}
