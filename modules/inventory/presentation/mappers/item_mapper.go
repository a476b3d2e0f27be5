package mappers

import (
	"github.com/iota-uz/backoffice/modules/inventory/domain/aggregates/item"
	"github.com/iota-uz/backoffice/modules/inventory/presentation/viewmodels"
)

const (
	NoLocation = "Sem Local"
	NoValue    = "—"
	dateLayout = "02/01/2006"
)

// StatusOptions is the status filter list; it does not depend on which
// statuses the fetched items have.
func StatusOptions() []string {
	out := make([]string, 0, len(item.Statuses))
	for _, s := range item.Statuses {
		out = append(out, string(s))
	}
	return out
}

func ItemToRow(i item.Item) viewmodels.Item {
	location := NoLocation
	if loc := i.Location(); loc != nil && loc.Name != "" {
		location = loc.Name
	}
	return viewmodels.Item{
		ID:           i.ID().String(),
		Model:        i.Model(),
		Capacity:     i.Capacity(),
		Color:        orPlaceholder(i.Color()),
		Grade:        orPlaceholder(i.Grade()),
		Status:       string(i.Status()),
		Location:     location,
		IMEI:         i.IMEI(),
		SerialNumber: i.SerialNumber(),
		CreatedAt:    i.CreatedAt().Format(dateLayout),
	}
}

func orPlaceholder(v string) string {
	return placeholder(v, NoValue)
}
