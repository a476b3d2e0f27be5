package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/backoffice/modules/security/domain/aggregates/user"
	"github.com/iota-uz/backoffice/pkg/itf"
	"github.com/iota-uz/backoffice/pkg/repo"
)

func TestUserRepository_List(t *testing.T) {
	t.Parallel()

	tc := itf.NewTestContext()
	tenantID := tc.TenantID()
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tx := &itf.Tx{
		QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			require.Contains(t, sql, "LEFT JOIN access_profiles ap")
			require.Contains(t, sql, "WHERE p.tenant_id = $1 AND p.deleted_at IS NULL")
			require.Contains(t, sql, "ORDER BY p.created_at DESC")
			require.Equal(t, []any{tenantID}, args)
			return itf.NewRows(
				[]any{uuid.New(), tenantID, "Ana Souza", "ana@example.com", "socio", "Financeiro", false, created, nil},
				[]any{uuid.New(), tenantID, nil, "ops@example.com", nil, nil, nil, created, nil},
			), nil
		},
	}

	list, err := NewUserRepository().List(tc.WithTx(tx).Build(), []repo.Filter{repo.IsNull(user.FilterDeletedAt)})
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.Equal(t, "Ana Souza", list[0].FullName())
	require.Equal(t, "socio", list[0].Role())
	require.Equal(t, &user.AccessProfile{Name: "Financeiro"}, list[0].AccessProfile())
	require.False(t, list[0].Deleted())

	require.Empty(t, list[1].FullName())
	require.Empty(t, list[1].Role())
	require.Nil(t, list[1].AccessProfile())
}

func TestUserRepository_List_RejectsUnknownFilter(t *testing.T) {
	t.Parallel()

	tc := itf.NewTestContext()
	_, err := NewUserRepository().List(tc.WithTx(&itf.Tx{}).Build(), []repo.Filter{repo.Eq("password", "x")})
	require.ErrorIs(t, err, repo.ErrUnknownFilterColumn)
}
