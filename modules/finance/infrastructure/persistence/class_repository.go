package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/class"
	"github.com/iota-uz/backoffice/pkg/composables"
	"github.com/iota-uz/backoffice/pkg/repo"
)

const classListQuery = `
        SELECT
            c.id,
            c.tenant_id,
            c.name,
            g.name,
            d.name,
            f.name
        FROM financial_classes c
        LEFT JOIN financial_groups g ON g.id = c.group_id
        LEFT JOIN dre_categories d ON d.id = c.dre_category_id
        LEFT JOIN capital_flow_categories f ON f.id = c.capital_flow_category_id`

var classFilterColumns = map[string]string{
	class.FilterDeletedAt: "c.deleted_at",
}

type ClassRepository struct{}

func NewClassRepository() class.Repository {
	return &ClassRepository{}
}

func (r *ClassRepository) List(ctx context.Context, filters []repo.Filter) ([]class.Class, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := repo.TenantQuery(classListQuery, "c.tenant_id", tenantID, filters, classFilterColumns, "c.name")
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query financial classes")
	}
	defer rows.Close()

	var out []class.Class
	for rows.Next() {
		var (
			id, rowTenantID         uuid.UUID
			name                    string
			group, dre, capitalFlow *string
		)
		if err := rows.Scan(&id, &rowTenantID, &name, &group, &dre, &capitalFlow); err != nil {
			return nil, errors.Wrap(err, "scan financial class")
		}
		out = append(out, class.Hydrate(id, rowTenantID, name, deref(group), deref(dre), deref(capitalFlow)))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate financial classes")
	}
	return out, nil
}
