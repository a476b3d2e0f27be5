package estimate

import (
	"context"

	"github.com/iota-uz/backoffice/pkg/repo"
)

const FilterStatus = "status"

type Repository interface {
	List(ctx context.Context, filters []repo.Filter) ([]Estimate, error)
}
