package services

import (
	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/account"
	"github.com/iota-uz/backoffice/modules/finance/presentation/mappers"
	"github.com/iota-uz/backoffice/modules/finance/presentation/viewmodels"
	"github.com/iota-uz/backoffice/pkg/colfilter"
	"github.com/iota-uz/backoffice/pkg/listing"
	"github.com/iota-uz/backoffice/pkg/repo"
)

const (
	AccountsPage    = "finance.accounts"
	AllAccountsPage = "finance.accounts.all"
)

func AccountsSchema() colfilter.Schema[viewmodels.Account] {
	return colfilter.Schema[viewmodels.Account]{
		Columns: []colfilter.ColumnDef[viewmodels.Account]{
			{Key: "type", Label: "Tipo", Project: func(r viewmodels.Account) string { return r.Type }},
			{Key: "subtype", Label: "Subtipo", Project: func(r viewmodels.Account) string { return r.Subtype }},
			{Key: "normal_balance", Label: "Natureza", Project: func(r viewmodels.Account) string { return r.NormalBalance }},
		},
		Search: []func(viewmodels.Account) string{
			func(r viewmodels.Account) string { return r.Name },
			func(r viewmodels.Account) string { return r.Code },
		},
	}
}

// NewAccountsPage lists the chart of accounts: live financial classes that
// carry an account code. Inactive accounts are shown only when
// includeInactive is set.
func NewAccountsPage(accounts account.Repository, includeInactive bool) *listing.Page[viewmodels.Account] {
	name := AccountsPage
	scope := []repo.Filter{
		repo.IsNull(account.FilterDeletedAt),
		repo.NotNull(account.FilterCode),
	}
	if includeInactive {
		name = AllAccountsPage
	} else {
		scope = append(scope, repo.Eq(account.FilterActive, true))
	}
	return &listing.Page[viewmodels.Account]{
		Name:       name,
		Collection: "financial_classes",
		Scope:      scope,
		Schema:     AccountsSchema(),
		Source:     listing.TenantSource(accounts.List, mappers.AccountToRow),
	}
}
