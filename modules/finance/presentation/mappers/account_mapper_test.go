package mappers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/account"
)

func TestAccountToRow(t *testing.T) {
	t.Parallel()

	row := AccountToRow(account.Hydrate(uuid.New(), uuid.Nil, " 2.3 ", "Capital Social", account.TypeEquity, "", account.Credit, true))
	require.Equal(t, "2.3", row.Code)
	require.Equal(t, "Equity", row.Type)
	require.Equal(t, NoValue, row.Subtype)
	require.Equal(t, "Credit", row.NormalBalance)
	require.Equal(t, "CR", row.Side)
	require.True(t, row.Active)

	row = AccountToRow(account.Hydrate(uuid.New(), uuid.Nil, "1.1", "Caixa", account.TypeAsset, "Current Asset", account.Debit, false))
	require.Equal(t, "Current Asset", row.Subtype)
	require.Equal(t, "DR", row.Side)
	require.False(t, row.Active)

	row = AccountToRow(account.Hydrate(uuid.New(), uuid.Nil, "9", "Transit", account.Type(""), "", account.NormalBalance(""), true))
	require.Equal(t, NoValue, row.Type)
	require.Equal(t, NoValue, row.NormalBalance)
}
