package mappers

import (
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/iota-uz/backoffice/modules/commercial/domain/aggregates/estimate"
	"github.com/iota-uz/backoffice/modules/commercial/presentation/viewmodels"
)

const (
	NoValue    = "—"
	dateLayout = "02/01/2006"
)

var statusLabels = map[estimate.Status]string{
	estimate.StatusDraft:     "Rascunho",
	estimate.StatusSent:      "Enviado",
	estimate.StatusApproved:  "Aprovado",
	estimate.StatusRejected:  "Rejeitado",
	estimate.StatusExpired:   "Expirado",
	estimate.StatusConverted: "Convertido",
}

// StatusLabel falls back to the raw code for statuses without a label.
func StatusLabel(s estimate.Status) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// FormatMoney renders amounts as "$1,234.50".
func FormatMoney(d decimal.Decimal) string {
	return money.New(d.Round(2).Shift(2).IntPart(), money.USD).Display()
}

func EstimateToRow(e estimate.Estimate) viewmodels.Estimate {
	customer := e.CustomerName()
	if customer == "" {
		customer = NoValue
	}
	shipDate := NoValue
	if d := e.ShipDate(); d != nil {
		shipDate = d.Format(dateLayout)
	}
	return viewmodels.Estimate{
		ID:          e.ID().String(),
		Number:      strconv.FormatInt(e.Number(), 10),
		Customer:    customer,
		Status:      string(e.Status()),
		StatusLabel: StatusLabel(e.Status()),
		Date:        e.EstimateDate().Format(dateLayout),
		ShipDate:    shipDate,
		Value:       FormatMoney(e.Total()),
		Total:       e.Total(),
	}
}
