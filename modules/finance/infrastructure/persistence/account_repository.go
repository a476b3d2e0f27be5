package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/account"
	"github.com/iota-uz/backoffice/pkg/composables"
	"github.com/iota-uz/backoffice/pkg/repo"
)

// The chart of accounts is the set of financial classes with an account code.
const accountListQuery = `
        SELECT
            c.id,
            c.tenant_id,
            c.account_code,
            c.name,
            c.account_type,
            c.account_subtype,
            c.normal_balance,
            c.active
        FROM financial_classes c`

var accountFilterColumns = map[string]string{
	account.FilterDeletedAt: "c.deleted_at",
	account.FilterCode:      "c.account_code",
	account.FilterActive:    "c.active",
	account.FilterType:      "c.account_type",
}

type AccountRepository struct{}

func NewAccountRepository() account.Repository {
	return &AccountRepository{}
}

func (r *AccountRepository) List(ctx context.Context, filters []repo.Filter) ([]account.Account, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := repo.TenantQuery(accountListQuery, "c.tenant_id", tenantID, filters, accountFilterColumns, "c.account_code")
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query accounts")
	}
	defer rows.Close()

	var out []account.Account
	for rows.Next() {
		var (
			id, rowTenantID               uuid.UUID
			code, name                    string
			accountType, subtype, balance *string
			active                        *bool
		)
		if err := rows.Scan(&id, &rowTenantID, &code, &name, &accountType, &subtype, &balance, &active); err != nil {
			return nil, errors.Wrap(err, "scan account")
		}
		out = append(out, account.Hydrate(
			id, rowTenantID, code, name,
			account.Type(deref(accountType)), deref(subtype), account.NormalBalance(deref(balance)),
			active == nil || *active,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate accounts")
	}
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
