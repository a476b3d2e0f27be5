package mappers

import (
	"strconv"

	"github.com/iota-uz/backoffice/modules/inventory/domain/aggregates/manufacturer"
	"github.com/iota-uz/backoffice/modules/inventory/domain/aggregates/product"
	"github.com/iota-uz/backoffice/modules/inventory/domain/aggregates/producttype"
	"github.com/iota-uz/backoffice/modules/inventory/domain/aggregates/stocklocation"
	"github.com/iota-uz/backoffice/modules/inventory/presentation/viewmodels"
)

const (
	NoCity    = "(Sem cidade)"
	NoState   = "(Sem estado)"
	NoWebsite = "(Sem website)"
	NoYear    = "(Sem ano)"
)

func StockLocationToRow(l stocklocation.StockLocation) viewmodels.StockLocation {
	return viewmodels.StockLocation{
		ID:        l.ID().String(),
		Name:      l.Name(),
		City:      placeholder(l.City(), NoCity),
		State:     placeholder(l.State(), NoState),
		Address:   orPlaceholder(l.Address()),
		WindStock: l.WindStock(),
	}
}

func ProductTypeToRow(t producttype.ProductType) viewmodels.ProductType {
	return viewmodels.ProductType{
		ID:             t.ID().String(),
		Name:           t.Name(),
		TrackingMethod: orPlaceholder(string(t.TrackingMethod())),
	}
}

func ManufacturerToRow(m manufacturer.Manufacturer) viewmodels.Manufacturer {
	return viewmodels.Manufacturer{
		ID:      m.ID().String(),
		Name:    m.Name(),
		Website: placeholder(m.Website(), NoWebsite),
	}
}

func ProductToRow(p product.Product) viewmodels.Product {
	year := NoYear
	if y := p.ReleaseYear(); y > 0 {
		year = strconv.Itoa(y)
	}
	return viewmodels.Product{
		ID:           p.ID().String(),
		Type:         orPlaceholder(p.Type()),
		Model:        p.Name(),
		Manufacturer: orPlaceholder(p.Manufacturer()),
		Year:         year,
	}
}

func placeholder(v, empty string) string {
	if v == "" {
		return empty
	}
	return v
}
