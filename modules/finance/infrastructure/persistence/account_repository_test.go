package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/account"
	"github.com/iota-uz/backoffice/pkg/itf"
	"github.com/iota-uz/backoffice/pkg/repo"
)

func TestAccountRepository_List(t *testing.T) {
	t.Parallel()

	tc := itf.NewTestContext()
	tenantID := tc.TenantID()
	tx := &itf.Tx{
		QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			require.Contains(t, sql, "FROM financial_classes c")
			require.Contains(t, sql, "WHERE c.tenant_id = $1 AND c.deleted_at IS NULL AND c.account_code IS NOT NULL AND c.active = $2")
			require.Contains(t, sql, "ORDER BY c.account_code")
			require.Equal(t, []any{tenantID, true}, args)
			return itf.NewRows(
				[]any{uuid.New(), tenantID, "1.1.01", "Caixa", "Asset", "Current Asset", "Debit", true},
				[]any{uuid.New(), tenantID, "3.1", "Vendas", "Revenue", nil, "Credit", nil},
			), nil
		},
	}

	list, err := NewAccountRepository().List(tc.WithTx(tx).Build(), []repo.Filter{
		repo.IsNull(account.FilterDeletedAt),
		repo.NotNull(account.FilterCode),
		repo.Eq(account.FilterActive, true),
	})
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "1.1.01", list[0].Code())
	require.Equal(t, account.TypeAsset, list[0].Type())
	require.Equal(t, "Current Asset", list[0].Subtype())
	require.True(t, list[0].Active())
	require.Empty(t, list[1].Subtype())
	require.Equal(t, account.Credit, list[1].NormalBalance())
	require.True(t, list[1].Active())
}

func TestAccountRepository_List_PropagatesRowsError(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")
	tc := itf.NewTestContext()
	tx := &itf.Tx{
		QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			return &itf.Rows{Failure: boom}, nil
		},
	}
	_, err := NewAccountRepository().List(tc.WithTx(tx).Build(), nil)
	require.ErrorIs(t, err, boom)
}
