package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/TessVincent/prismhealth/internal/logger"
)

const (
	tableHealthRecords     = "health_records"
	tableMedicationRecords = "medication_records"
	tableExerciseRecords   = "exercise_records"
	tableHealthScores      = "health_scores"
	tableProofs            = "verification_proofs"
	tableTransactions      = "transactions"
	tableEventLogs         = "event_logs"
	tableBlocks            = "blocks"
	tableCiphertexts       = "ciphertexts"
	tableACL               = "acl_entries"
)

var (
	healthColumns     = []string{"owner", "id", "timestamp", "systolic_bp", "diastolic_bp", "blood_glucose", "heart_rate", "weight", "deleted"}
	medicationColumns = []string{"owner", "id", "timestamp", "name", "dosage", "frequency", "start_date", "end_date"}
	exerciseColumns   = []string{"owner", "id", "timestamp", "exercise_type", "duration", "calories"}
	scoreColumns      = []string{"owner", "total_score", "cardiovascular", "metabolic", "exercise", "medication", "risk_level", "timestamp"}
	proofColumns      = []string{"owner", "id", "timestamp", "verification_type", "result", "tx_hash"}
	txColumns         = []string{"hash", "from_address", "to_address", "method", "status", "block_number", "created_at"}
	logColumns        = []string{"tx_hash", "log_index", "address", "topics", "data"}
)

// execStatement builds and runs a DML statement.
func execStatement(ctx context.Context, q querier, fn string, b sq.Sqlizer) (sql.Result, error) {
	log := logger.FromContext(ctx)

	query, args, err := b.ToSql()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute statement")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return res, nil
}

// queryRow builds a single-row query and scans it into dest. No row maps
// to ErrNotFound.
func queryRow(ctx context.Context, q querier, fn string, b sq.Sqlizer, dest ...any) error {
	log := logger.FromContext(ctx)

	query, args, err := b.ToSql()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = q.QueryRowContext(ctx, query, args...).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to scan row")
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return nil
}

func countRows(ctx context.Context, q querier, fn string, b sq.StatementBuilderType, table string, where sq.Sqlizer) (uint64, error) {
	var n uint64
	err := queryRow(ctx, q, fn, b.Select("COUNT(*)").From(table).Where(where), &n)
	return n, err
}
