package composables

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/iota-uz/backoffice/pkg/constants"
)

// InTenantTx runs fn inside a read-write transaction scoped to the tenant in
// ctx. An existing transaction is reused as is.
func InTenantTx(ctx context.Context, fn func(context.Context) error) error {
	if existing, ok := ctx.Value(constants.TxKey).(pgx.Tx); ok && existing != nil {
		if err := ApplyTenantRLS(ctx, existing); err != nil {
			return err
		}
		return fn(ctx)
	}

	pool, err := UsePool(ctx)
	if err != nil {
		return err
	}
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}

	txCtx := WithTx(ctx, tx)
	if err := ApplyTenantRLS(txCtx, tx); err != nil {
		return rollback(ctx, tx, err)
	}
	if err := fn(txCtx); err != nil {
		return rollback(ctx, tx, err)
	}
	return tx.Commit(ctx)
}

func InTenantTxResult[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	var out T
	err := InTenantTx(ctx, func(txCtx context.Context) error {
		var innerErr error
		out, innerErr = fn(txCtx)
		return innerErr
	})
	return out, err
}

func rollback(ctx context.Context, tx pgx.Tx, cause error) error {
	if rErr := tx.Rollback(ctx); rErr != nil {
		return errors.Join(cause, rErr)
	}
	return cause
}
