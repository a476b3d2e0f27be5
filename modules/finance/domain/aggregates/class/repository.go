package class

import (
	"context"

	"github.com/iota-uz/backoffice/pkg/repo"
)

const FilterDeletedAt = "deleted_at"

type Repository interface {
	List(ctx context.Context, filters []repo.Filter) ([]Class, error)
}
