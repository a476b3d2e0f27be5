package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/agent"
	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/bankaccount"
	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/class"
	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/costcenter"
	"github.com/iota-uz/backoffice/pkg/itf"
	"github.com/iota-uz/backoffice/pkg/repo"
)

func stubQuery(t *testing.T, from, where, order string, rows ...[]any) *itf.Tx {
	t.Helper()
	return &itf.Tx{
		QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			require.Contains(t, sql, from)
			require.Contains(t, sql, where)
			require.Contains(t, sql, order)
			return itf.NewRows(rows...), nil
		},
	}
}

func TestAgentRepository_List(t *testing.T) {
	t.Parallel()

	tc := itf.NewTestContext()
	tenantID := tc.TenantID()
	deletedAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	tx := stubQuery(t, "FROM agents a", "WHERE a.tenant_id = $1 AND a.deleted_at IS NOT NULL", "ORDER BY a.name",
		[]any{uuid.New(), tenantID, "Acme", "Acme Ltda", "12.345.678/0001-90", "BR", "company", []string{"cliente", "suprimentos"}, deletedAt},
		[]any{uuid.New(), tenantID, "Bia", nil, nil, "US", "individual", nil, deletedAt},
	)

	list, err := NewAgentRepository().List(tc.WithTx(tx).Build(), []repo.Filter{repo.NotNull(agent.FilterDeletedAt)})
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, []agent.Role{agent.RoleCustomer, agent.RoleSupplies}, list[0].Roles())
	require.Equal(t, agent.Company, list[0].PersonType())
	require.Empty(t, list[1].TaxID())
	require.Empty(t, list[1].Roles())
	require.Equal(t, deletedAt, *list[1].DeletedAt())
}

func TestBankAccountRepository_List(t *testing.T) {
	t.Parallel()

	tc := itf.NewTestContext()
	tenantID := tc.TenantID()
	tx := stubQuery(t, "FROM bank_accounts b", "WHERE b.tenant_id = $1 AND b.deleted_at IS NULL", "ORDER BY b.account_type, b.name",
		[]any{uuid.New(), tenantID, "Itaú", "checking", "brl", "1234-5", nil, true},
		[]any{uuid.New(), tenantID, "Carteira", "crypto", "USDT", nil, "0xabc", false},
	)

	list, err := NewBankAccountRepository().List(tc.WithTx(tx).Build(), []repo.Filter{repo.IsNull(bankaccount.FilterDeletedAt)})
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "BRL", list[0].Currency())
	require.Equal(t, "1234-5", list[0].AccountNumber())
	require.Equal(t, "0xabc", list[1].WalletAddress())
	require.False(t, list[1].Active())
}

func TestClassRepository_List(t *testing.T) {
	t.Parallel()

	tc := itf.NewTestContext()
	tenantID := tc.TenantID()
	tx := stubQuery(t, "LEFT JOIN financial_groups g ON g.id = c.group_id", "WHERE c.tenant_id = $1 AND c.deleted_at IS NULL", "ORDER BY c.name",
		[]any{uuid.New(), tenantID, "Aluguel", "Despesas Fixas", "Despesas Operacionais", nil},
	)

	list, err := NewClassRepository().List(tc.WithTx(tx).Build(), []repo.Filter{repo.IsNull(class.FilterDeletedAt)})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Despesas Fixas", list[0].Group())
	require.Empty(t, list[0].CapitalFlowCategory())
}

func TestCostCenterRepository_List(t *testing.T) {
	t.Parallel()

	tc := itf.NewTestContext()
	tenantID := tc.TenantID()
	tx := stubQuery(t, "FROM cost_centers cc", "WHERE cc.tenant_id = $1 AND cc.deleted_at IS NULL", "ORDER BY cc.name",
		[]any{uuid.New(), tenantID, " ADM ", "Administrativo", nil},
	)

	list, err := NewCostCenterRepository().List(tc.WithTx(tx).Build(), []repo.Filter{repo.IsNull(costcenter.FilterDeletedAt)})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "ADM", list[0].Code())
	require.Empty(t, list[0].Description())
}

func TestListingRepositories_RejectUnknownFilter(t *testing.T) {
	t.Parallel()

	ctx := itf.NewTestContext().WithTx(&itf.Tx{}).Build()
	bad := []repo.Filter{repo.Eq("password", "x")}

	_, err := NewAgentRepository().List(ctx, bad)
	require.ErrorIs(t, err, repo.ErrUnknownFilterColumn)
	_, err = NewBankAccountRepository().List(ctx, bad)
	require.ErrorIs(t, err, repo.ErrUnknownFilterColumn)
	_, err = NewClassRepository().List(ctx, bad)
	require.ErrorIs(t, err, repo.ErrUnknownFilterColumn)
	_, err = NewCostCenterRepository().List(ctx, bad)
	require.ErrorIs(t, err, repo.ErrUnknownFilterColumn)
}

func TestAgentRepository_QueryError(t *testing.T) {
	t.Parallel()

	boom := errors.New("relation does not exist")
	tx := &itf.Tx{
		QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			return nil, boom
		},
	}
	_, err := NewAgentRepository().List(itf.NewTestContext().WithTx(tx).Build(), nil)
	require.ErrorIs(t, err, boom)
}
