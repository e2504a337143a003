package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TessVincent/prismhealth/models"
)

func TestDB_RunInTx_Commits(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO health_scores")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := db.RunInTx(context.Background(), false, func(r Repositories) error {
		return r.Scores.SaveScore(context.Background(), testOwner, models.HealthScore{})
	})
	assert.NoError(t, err)
}

func TestDB_RunInTx_RollbackRequested(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO health_scores")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := db.RunInTx(context.Background(), true, func(r Repositories) error {
		return r.Scores.SaveScore(context.Background(), testOwner, models.HealthScore{})
	})
	assert.NoError(t, err)
}

func TestDB_RunInTx_DomainErrorIsNotRetried(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	calls := 0
	err := db.RunInTx(context.Background(), false, func(Repositories) error {
		calls++
		return models.ErrRecordDeleted
	})
	assert.ErrorIs(t, err, models.ErrRecordDeleted)
	assert.Equal(t, 1, calls)
}

func TestDB_RunInTx_RetriesSerializationFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO health_scores")).WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO health_scores")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	calls := 0
	err := db.RunInTx(context.Background(), false, func(r Repositories) error {
		calls++
		return r.Scores.SaveScore(context.Background(), testOwner, models.HealthScore{})
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDB_RunInTx_BeginFails(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin().WillReturnError(assert.AnError)

	err := db.RunInTx(context.Background(), false, func(Repositories) error { return nil })
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestDB_RunInTx_RetriesRecordIDRace(t *testing.T) {
	db, mock := newMockDB(t)

	calls := 0
	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	err := db.RunInTx(context.Background(), false, func(Repositories) error {
		calls++
		if calls == 1 {
			return ErrDuplicateKey
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
