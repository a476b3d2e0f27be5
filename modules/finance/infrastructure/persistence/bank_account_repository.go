package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/bankaccount"
	"github.com/iota-uz/backoffice/pkg/composables"
	"github.com/iota-uz/backoffice/pkg/repo"
)

const bankAccountListQuery = `
        SELECT
            b.id,
            b.tenant_id,
            b.name,
            b.account_type,
            b.currency,
            b.account_number,
            b.wallet_address,
            b.is_active
        FROM bank_accounts b`

var bankAccountFilterColumns = map[string]string{
	bankaccount.FilterDeletedAt: "b.deleted_at",
}

type BankAccountRepository struct{}

func NewBankAccountRepository() bankaccount.Repository {
	return &BankAccountRepository{}
}

func (r *BankAccountRepository) List(ctx context.Context, filters []repo.Filter) ([]bankaccount.BankAccount, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := repo.TenantQuery(bankAccountListQuery, "b.tenant_id", tenantID, filters, bankAccountFilterColumns, "b.account_type, b.name")
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query bank accounts")
	}
	defer rows.Close()

	var out []bankaccount.BankAccount
	for rows.Next() {
		var (
			id, rowTenantID              uuid.UUID
			name, accountType, currency  string
			accountNumber, walletAddress *string
			active                       bool
		)
		if err := rows.Scan(&id, &rowTenantID, &name, &accountType, &currency, &accountNumber, &walletAddress, &active); err != nil {
			return nil, errors.Wrap(err, "scan bank account")
		}
		out = append(out, bankaccount.Hydrate(
			id, rowTenantID, name, accountType, currency, deref(accountNumber), deref(walletAddress), active,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate bank accounts")
	}
	return out, nil
}
