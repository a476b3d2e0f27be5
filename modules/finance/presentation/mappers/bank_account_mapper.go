package mappers

import (
	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/bankaccount"
	"github.com/iota-uz/backoffice/modules/finance/presentation/viewmodels"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// BankAccountStatuses is the fixed option list of the status filter.
var BankAccountStatuses = []string{StatusActive, StatusInactive}

func BankAccountToRow(b bankaccount.BankAccount) viewmodels.BankAccount {
	status := StatusInactive
	if b.Active() {
		status = StatusActive
	}
	return viewmodels.BankAccount{
		ID:            b.ID().String(),
		Name:          b.Name(),
		Type:          b.Type(),
		Currency:      b.Currency(),
		AccountNumber: b.AccountNumber(),
		WalletAddress: b.WalletAddress(),
		Status:        status,
	}
}
