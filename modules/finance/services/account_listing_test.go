package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/account"
	"github.com/iota-uz/backoffice/pkg/itf"
	"github.com/iota-uz/backoffice/pkg/listing"
	"github.com/iota-uz/backoffice/pkg/repo"
)

type fakeAccountRepository struct {
	accounts []account.Account
	filters  []repo.Filter
	err      error
}

func (f *fakeAccountRepository) List(_ context.Context, filters []repo.Filter) ([]account.Account, error) {
	f.filters = filters
	return f.accounts, f.err
}

func TestAccountsPage(t *testing.T) {
	t.Parallel()

	fake := &fakeAccountRepository{accounts: []account.Account{
		account.Hydrate(uuid.New(), uuid.Nil, "1.1.01", "Caixa", account.TypeAsset, "Current Asset", account.Debit, true),
		account.Hydrate(uuid.New(), uuid.Nil, "2.1.01", "Fornecedores", account.TypeLiability, "Current Liability", account.Credit, true),
		account.Hydrate(uuid.New(), uuid.Nil, "3.1", "Vendas", account.TypeRevenue, "", account.Credit, true),
	}}
	svc := listing.NewService(NewAccountsPage(fake, false), listing.Options{})
	ctx := itf.NewTestContext().WithTx(&itf.Tx{}).Build()

	res, err := svc.View(ctx)
	require.NoError(t, err)
	require.Equal(t, []repo.Filter{
		repo.IsNull(account.FilterDeletedAt),
		repo.NotNull(account.FilterCode),
		repo.Eq(account.FilterActive, true),
	}, fake.filters)
	require.Equal(t, []string{"Asset", "Liability", "Revenue"}, res.Snapshot.Columns[0].Options)
	require.Equal(t, []string{"Current Asset", "Current Liability", "—"}, res.Snapshot.Columns[1].Options)
	require.Equal(t, []string{"Credit", "Debit"}, res.Snapshot.Columns[2].Options)

	res, err = svc.Toggle(ctx, "normal_balance", "Credit")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	require.Equal(t, "Caixa", res.Rows[0].Name)
	require.Equal(t, "DR", res.Rows[0].Side)

	_, err = svc.Clear(ctx)
	require.NoError(t, err)
	res, err = svc.SetSearch(ctx, "2.1")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	require.Equal(t, "Fornecedores", res.Rows[0].Name)
}

func TestAccountsPage_IncludeInactive(t *testing.T) {
	t.Parallel()

	fake := &fakeAccountRepository{}
	page := NewAccountsPage(fake, true)
	require.Equal(t, AllAccountsPage, page.Name)

	_, err := listing.NewService(page, listing.Options{}).View(itf.NewTestContext().WithTx(&itf.Tx{}).Build())
	require.NoError(t, err)
	require.Equal(t, []repo.Filter{
		repo.IsNull(account.FilterDeletedAt),
		repo.NotNull(account.FilterCode),
	}, fake.filters)
}

func TestAccountsPage_FailedRefreshKeepsFilters(t *testing.T) {
	t.Parallel()

	fake := &fakeAccountRepository{accounts: []account.Account{
		account.Hydrate(uuid.New(), uuid.Nil, "1", "Caixa", account.TypeAsset, "", account.Debit, true),
		account.Hydrate(uuid.New(), uuid.Nil, "2", "Banco", account.TypeAsset, "", account.Credit, true),
	}}
	svc := listing.NewService(NewAccountsPage(fake, false), listing.Options{})
	ctx := itf.NewTestContext().WithTx(&itf.Tx{}).Build()

	_, err := svc.Toggle(ctx, "normal_balance", "Debit")
	require.NoError(t, err)

	fake.err = errors.New("timeout")
	_, err = svc.View(ctx)
	require.ErrorIs(t, err, listing.ErrFetchFailed)

	opts, err := svc.Options(ctx, "normal_balance", "")
	require.NoError(t, err)
	require.Equal(t, []string{"Credit", "Debit"}, opts)
}
