package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/StephEngl/KanMind/internal/logger"
	"github.com/StephEngl/KanMind/migrations"
)

const (
	// maxStatementAttempts bounds the retry loop for statements whose
	// failure the classifier marks [Retryable].
	maxStatementAttempts = 3

	// statementRetryBackoff is the pause between statement attempts.
	statementRetryBackoff = 100 * time.Millisecond
)

// DB wraps the standard *sql.DB with the migration dialect and an error
// classifier for retry decisions.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// ExecContext executes a statement, retrying it when the classifier marks
// the failure as transient (deadlock, serialization failure, lost
// connection, locked SQLite file). Statements running inside an explicit
// transaction go through [sql.Tx] and are never retried.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var res sql.Result
	err := db.withRetry(ctx, func() error {
		var execErr error
		res, execErr = db.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	return res, err
}

// QueryContext executes a query with the same retry policy as
// [DB.ExecContext].
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	var rows *sql.Rows
	err := db.withRetry(ctx, func() error {
		var queryErr error
		rows, queryErr = db.DB.QueryContext(ctx, query, args...)
		return queryErr
	})
	return rows, err
}

func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	if db.errorClassificator == nil {
		return err
	}

	for attempt := 1; attempt < maxStatementAttempts; attempt++ {
		if err == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying statement after transient database error")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(statementRetryBackoff):
		}

		err = op()
	}

	return err
}
