// Package pgxutil bridges database/sql pools to native pgx connections and
// runs lifecycle transitions inside retried transactions.
package pgxutil

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/stdlib"
)

// DefaultTxAttempts bounds how often a transaction is replayed after a
// serialization failure or deadlock.
const DefaultTxAttempts = 3

// TxConfig groups parameters for WithPgxTx.
type TxConfig struct {
	// Opts defaults to the server isolation level in read-write mode.
	Opts pgx.TxOptions
	// Attempts caps replays of Fn; zero means DefaultTxAttempts.
	Attempts int
	// Fn must be safe to replay: it may run more than once.
	Fn func(pgx.Tx) error
}

// WithPgxConn acquires a *pgx.Conn via the stdlib bridge and executes fn with it.
func WithPgxConn(ctx context.Context, db *sql.DB, fn func(*pgx.Conn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("get conn from pool: %w", err)
	}
	defer func() { _ = conn.Close() }()

	return conn.Raw(func(dc any) error {
		std, ok := dc.(*stdlib.Conn)
		if !ok {
			return errors.New("unexpected driver connection type; expected *stdlib.Conn")
		}
		return fn(std.Conn())
	})
}

// WithPgxTx runs cfg.Fn within a pgx transaction, replaying it when
// Postgres aborts the transaction with a retryable error.
func WithPgxTx(ctx context.Context, db *sql.DB, cfg TxConfig) error {
	return WithPgxConn(ctx, db, func(pgxConn *pgx.Conn) error {
		return Retry(ctx, cfg.Attempts, func() error {
			return runTx(ctx, pgxConn, cfg)
		})
	})
}

func runTx(ctx context.Context, conn *pgx.Conn, cfg TxConfig) error {
	tx, err := conn.BeginTx(ctx, cfg.Opts)
	if err != nil {
		return fmt.Errorf("begin pgx tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if fnErr := cfg.Fn(tx); fnErr != nil {
		return fnErr
	}
	if commitErr := tx.Commit(ctx); commitErr != nil {
		return fmt.Errorf("commit pgx tx: %w", commitErr)
	}
	return nil
}

// Retry calls fn until it succeeds, returns a non-retryable error, the
// context ends, or attempts are exhausted. The last error is returned.
func Retry(ctx context.Context, attempts int, fn func() error) error {
	if attempts <= 0 {
		attempts = DefaultTxAttempts
	}
	var err error
	for range attempts {
		if err = fn(); err == nil || !IsRetryable(err) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Join(err, ctxErr)
		}
	}
	return err
}

// IsRetryable reports whether err is a transient transaction conflict.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
		return true
	default:
		return false
	}
}
