package mappers

import (
	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/account"
	"github.com/iota-uz/backoffice/modules/finance/presentation/viewmodels"
)

const (
	NoValue = "—"
	// NoLink fills optional relations of financial classes.
	NoLink = "-"
)

func orPlaceholder(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}

// AccountToRow keeps the stored type and balance spelling; those are the
// filter values.
func AccountToRow(a account.Account) viewmodels.Account {
	side := "CR"
	if a.NormalBalance() == account.Debit {
		side = "DR"
	}
	return viewmodels.Account{
		ID:            a.ID().String(),
		Code:          a.Code(),
		Name:          a.Name(),
		Type:          orPlaceholder(string(a.Type()), NoValue),
		Subtype:       orPlaceholder(a.Subtype(), NoValue),
		NormalBalance: orPlaceholder(string(a.NormalBalance()), NoValue),
		Side:          side,
		Active:        a.Active(),
	}
}
