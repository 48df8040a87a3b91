package repositories

import (
	"context"
	"database/sql"
)

type reconTxKey struct{}

// querier is the common surface of *sql.DB and *sql.Tx. Reconciliation
// mutations run against the tx that Atomic injected into the context; reads
// outside a transaction go to the read pool.
type querier interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func injectTx(ctx context.Context, db querier) context.Context {
	return context.WithValue(ctx, reconTxKey{}, db)
}

// DetachTx strips the injected transaction so subsequent reads resolve to the
// read pool. A *sql.Tx is bound to a single connection and cannot serve
// concurrent queries; the candidate searches fan out in parallel and need no
// transactional view of the sources they scan.
func DetachTx(ctx context.Context) context.Context {
	if ctx.Value(reconTxKey{}) == nil {
		return ctx
	}
	return context.WithValue(ctx, reconTxKey{}, nil)
}

func (r *Repository) extractTxWrite(ctx context.Context) querier {
	if db, ok := ctx.Value(reconTxKey{}).(querier); ok {
		return db
	}
	return r.dbWrite
}

func (r *Repository) extractTxRead(ctx context.Context) querier {
	if db, ok := ctx.Value(reconTxKey{}).(querier); ok {
		return db
	}
	return r.dbRead
}
