package services

import (
	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/class"
	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/costcenter"
	"github.com/iota-uz/backoffice/modules/finance/presentation/mappers"
	"github.com/iota-uz/backoffice/modules/finance/presentation/viewmodels"
	"github.com/iota-uz/backoffice/pkg/colfilter"
	"github.com/iota-uz/backoffice/pkg/listing"
	"github.com/iota-uz/backoffice/pkg/repo"
)

const (
	ClassesPage            = "finance.classes"
	CostCentersPage        = "finance.cost-centers"
	DeletedCostCentersPage = "finance.cost-centers.deleted"
)

func ClassesSchema() colfilter.Schema[viewmodels.Class] {
	return colfilter.Schema[viewmodels.Class]{
		Columns: []colfilter.ColumnDef[viewmodels.Class]{
			{Key: "name", Label: "Nome", Project: func(r viewmodels.Class) string { return r.Name }},
			{Key: "group", Label: "Grupo", Project: func(r viewmodels.Class) string { return r.Group }},
			{Key: "dre", Label: "Categoria DRE", Project: func(r viewmodels.Class) string { return r.DRECategory }},
			{Key: "capital_flow", Label: "Fluxo de Caixa", Project: func(r viewmodels.Class) string { return r.CapitalFlowCategory }},
		},
		Search: []func(viewmodels.Class) string{
			func(r viewmodels.Class) string { return r.Name },
		},
	}
}

func NewClassesPage(classes class.Repository) *listing.Page[viewmodels.Class] {
	return &listing.Page[viewmodels.Class]{
		Name:       ClassesPage,
		Collection: "financial_classes",
		Scope:      []repo.Filter{repo.IsNull(class.FilterDeletedAt)},
		Schema:     ClassesSchema(),
		Source:     listing.TenantSource(classes.List, mappers.ClassToRow),
	}
}

func CostCentersSchema() colfilter.Schema[viewmodels.CostCenter] {
	return colfilter.Schema[viewmodels.CostCenter]{
		Columns: []colfilter.ColumnDef[viewmodels.CostCenter]{
			{Key: "name", Label: "Nome", Project: func(r viewmodels.CostCenter) string { return r.Name }},
			{Key: "code", Label: "Código", Project: func(r viewmodels.CostCenter) string { return r.Code }},
		},
		Search: []func(viewmodels.CostCenter) string{
			func(r viewmodels.CostCenter) string { return r.Name },
			func(r viewmodels.CostCenter) string { return r.Code },
		},
	}
}

// NewCostCentersPage lists live cost centers, or soft-deleted ones when
// deleted is set.
func NewCostCentersPage(costCenters costcenter.Repository, deleted bool) *listing.Page[viewmodels.CostCenter] {
	name, scope := CostCentersPage, repo.IsNull(costcenter.FilterDeletedAt)
	if deleted {
		name, scope = DeletedCostCentersPage, repo.NotNull(costcenter.FilterDeletedAt)
	}
	return &listing.Page[viewmodels.CostCenter]{
		Name:       name,
		Collection: "cost_centers",
		Scope:      []repo.Filter{scope},
		Schema:     CostCentersSchema(),
		Source:     listing.TenantSource(costCenters.List, mappers.CostCenterToRow),
	}
}
