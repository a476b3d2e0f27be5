package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/iota-uz/backoffice/modules/security/domain/aggregates/user"
	"github.com/iota-uz/backoffice/pkg/composables"
	"github.com/iota-uz/backoffice/pkg/repo"
)

const userListQuery = `
        SELECT
            p.id,
            p.tenant_id,
            p.full_name,
            p.email,
            p.role_v2,
            ap.name,
            ap.is_system_profile,
            p.created_at,
            p.deleted_at
        FROM profiles p
        LEFT JOIN access_profiles ap ON ap.id = p.access_profile_id`

var userFilterColumns = map[string]string{
	user.FilterDeletedAt: "p.deleted_at",
}

type UserRepository struct{}

func NewUserRepository() user.Repository {
	return &UserRepository{}
}

func (r *UserRepository) List(ctx context.Context, filters []repo.Filter) ([]user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	where, args, err := repo.BuildWhere(filters, userFilterColumns, 2)
	if err != nil {
		return nil, err
	}
	where = append([]string{"p.tenant_id = $1"}, where...)
	args = append([]any{tenantID}, args...)

	query := userListQuery + "\n        WHERE " + strings.Join(where, " AND ") + "\n        ORDER BY p.created_at DESC"
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query users")
	}
	defer rows.Close()

	var out []user.User
	for rows.Next() {
		var (
			id, rowTenantID        uuid.UUID
			fullName, role, apName *string
			email                  string
			apSystem               *bool
			createdAt              time.Time
			deletedAt              *time.Time
		)
		if err := rows.Scan(&id, &rowTenantID, &fullName, &email, &role, &apName, &apSystem, &createdAt, &deletedAt); err != nil {
			return nil, errors.Wrap(err, "scan user")
		}
		var profile *user.AccessProfile
		if apName != nil {
			profile = &user.AccessProfile{Name: *apName, System: apSystem != nil && *apSystem}
		}
		out = append(out, user.Hydrate(
			id, rowTenantID, deref(fullName), email, deref(role), profile, createdAt, deletedAt,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate users")
	}
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
