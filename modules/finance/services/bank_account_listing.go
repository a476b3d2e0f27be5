package services

import (
	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/bankaccount"
	"github.com/iota-uz/backoffice/modules/finance/presentation/mappers"
	"github.com/iota-uz/backoffice/modules/finance/presentation/viewmodels"
	"github.com/iota-uz/backoffice/pkg/colfilter"
	"github.com/iota-uz/backoffice/pkg/listing"
	"github.com/iota-uz/backoffice/pkg/repo"
)

const BankAccountsPage = "finance.bank-accounts"

func BankAccountsSchema() colfilter.Schema[viewmodels.BankAccount] {
	return colfilter.Schema[viewmodels.BankAccount]{
		Columns: []colfilter.ColumnDef[viewmodels.BankAccount]{
			{Key: "type", Label: "Tipo", Project: func(r viewmodels.BankAccount) string { return r.Type }},
			{Key: "currency", Label: "Moeda", Project: func(r viewmodels.BankAccount) string { return r.Currency }},
			{
				Key:     "status",
				Label:   "Status",
				Project: func(r viewmodels.BankAccount) string { return r.Status },
				Fixed:   mappers.BankAccountStatuses,
			},
		},
		Search: []func(viewmodels.BankAccount) string{
			func(r viewmodels.BankAccount) string { return r.Name },
			func(r viewmodels.BankAccount) string { return r.AccountNumber },
			func(r viewmodels.BankAccount) string { return r.WalletAddress },
		},
	}
}

func NewBankAccountsPage(accounts bankaccount.Repository) *listing.Page[viewmodels.BankAccount] {
	return &listing.Page[viewmodels.BankAccount]{
		Name:       BankAccountsPage,
		Collection: "bank_accounts",
		Scope:      []repo.Filter{repo.IsNull(bankaccount.FilterDeletedAt)},
		Schema:     BankAccountsSchema(),
		Source:     listing.TenantSource(accounts.List, mappers.BankAccountToRow),
	}
}
