package mappers

import (
	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/class"
	"github.com/iota-uz/backoffice/modules/finance/domain/aggregates/costcenter"
	"github.com/iota-uz/backoffice/modules/finance/presentation/viewmodels"
)

func ClassToRow(c class.Class) viewmodels.Class {
	return viewmodels.Class{
		ID:                  c.ID().String(),
		Name:                c.Name(),
		Group:               orPlaceholder(c.Group(), NoLink),
		DRECategory:         orPlaceholder(c.DRECategory(), NoLink),
		CapitalFlowCategory: orPlaceholder(c.CapitalFlowCategory(), NoLink),
	}
}

func CostCenterToRow(c costcenter.CostCenter) viewmodels.CostCenter {
	return viewmodels.CostCenter{
		ID:          c.ID().String(),
		Code:        c.Code(),
		Name:        c.Name(),
		Description: orPlaceholder(c.Description(), NoLink),
	}
}
