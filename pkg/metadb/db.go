// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

// Package metadb persists ModelBox metadata in PostgreSQL.
//
// All create operations of experiments, models and model versions follow
// the same transaction protocol: a change-log row is inserted first, then
// the entity row with ON CONFLICT DO NOTHING. When the entity already
// exists the transaction is rolled back, so a duplicate create leaves no
// extra change-log row behind.
package metadb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/zeebo/errs"
	monkit "gopkg.in/spacemonkeygo/monkit.v2"
)

var (
	mon = monkit.Package()

	// Error is the default metadb errs class.
	Error = errs.Class("metadb error")

	// ErrRecordExists signals that an idempotent create hit an existing
	// row. It is consumed inside the create operations and converted to
	// an exists result; it never crosses the package boundary.
	ErrRecordExists = errs.Class("record exists")

	// ErrNotFound signals a lookup of an unknown id.
	ErrNotFound = errs.Class("not found")
)

// DB wraps the metadata database handle.
type DB struct {
	db *sql.DB
}

// Open connects to the postgres database at databaseURL and verifies the
// connection.
func Open(ctx context.Context, databaseURL string) (*DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, Error.Wrap(errs.Combine(err, db.Close()))
	}
	return &DB{db: db}, nil
}

// Wrap adopts an existing handle. Used by tests.
func Wrap(db *sql.DB) *DB {
	return &DB{db: db}
}

// Close releases the connection pool.
func (db *DB) Close() error {
	return Error.Wrap(db.db.Close())
}

// withTx runs fn inside a transaction, committing on nil and rolling
// back on error. Serialization failures are retried with fresh
// transactions for a bounded time, so fn must be idempotent outside its
// database writes.
func (db *DB) withTx(ctx context.Context, fn func(context.Context, *sql.Tx) error) (err error) {
	defer mon.Task()(&ctx)(&err)

	start := time.Now()

	for i := 0; ; i++ {
		err, rollbackErr := db.withTxOnce(ctx, fn)
		if time.Since(start) < 5*time.Minute && i < 10 {
			if errCode(err) == "40001" {
				mon.Event(fmt.Sprintf("transaction_retry_%d", i+1))
				continue
			}
		}
		mon.IntVal("transaction_retries").Observe(int64(i))
		return errs.Combine(err, rollbackErr)
	}
}

func (db *DB) withTxOnce(ctx context.Context, fn func(context.Context, *sql.Tx) error) (err, rollbackErr error) {
	tx, err := db.db.BeginTx(ctx, nil)
	if err != nil {
		return Error.Wrap(err), nil
	}
	defer func() {
		if err == nil {
			err = Error.Wrap(tx.Commit())
		} else {
			rollbackErr = Error.Wrap(tx.Rollback())
		}
	}()

	return fn(ctx, tx), nil
}

// errCode returns the postgres error code of any pq error in the chain
// walked by unwrapping.
func errCode(err error) (code string) {
	errs.IsFunc(err, func(err error) bool {
		if pgerr, ok := err.(*pq.Error); ok {
			code = string(pgerr.Code)
			return true
		}
		return false
	})
	return code
}
