package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/erphq/hrm-backend-go/internal/pkg/database"
)

type txKey struct{}

// WithTx stores a transaction in the context so repositories called inside
// database.WithTransaction join it instead of the pool.
func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetQuerier returns the context's transaction when present, the pool
// otherwise.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
