package services

import (
	"github.com/shopspring/decimal"

	"github.com/iota-uz/backoffice/modules/commercial/domain/aggregates/estimate"
	"github.com/iota-uz/backoffice/modules/commercial/presentation/mappers"
	"github.com/iota-uz/backoffice/modules/commercial/presentation/viewmodels"
	"github.com/iota-uz/backoffice/pkg/colfilter"
	"github.com/iota-uz/backoffice/pkg/listing"
)

const EstimatesPage = "commercial.estimates"

func EstimatesSchema() colfilter.Schema[viewmodels.Estimate] {
	return colfilter.Schema[viewmodels.Estimate]{
		Columns: []colfilter.ColumnDef[viewmodels.Estimate]{
			{
				Key:     "number",
				Label:   "Número",
				Project: func(r viewmodels.Estimate) string { return r.Number },
				Order:   colfilter.NumericDescending,
			},
			{Key: "customer", Label: "Cliente", Project: func(r viewmodels.Estimate) string { return r.Customer }},
			{Key: "status", Label: "Status", Project: func(r viewmodels.Estimate) string { return r.StatusLabel }},
			{Key: "date", Label: "Data", Project: func(r viewmodels.Estimate) string { return r.Date }},
			{Key: "ship_date", Label: "Envio", Project: func(r viewmodels.Estimate) string { return r.ShipDate }},
			{Key: "value", Label: "Valor", Project: func(r viewmodels.Estimate) string { return r.Value }},
		},
		Search: []func(viewmodels.Estimate) string{
			func(r viewmodels.Estimate) string { return r.Customer },
			func(r viewmodels.Estimate) string { return r.Number },
		},
	}
}

func NewEstimatesPage(estimates estimate.Repository) *listing.Page[viewmodels.Estimate] {
	return &listing.Page[viewmodels.Estimate]{
		Name:       EstimatesPage,
		Collection: "estimates",
		Schema:     EstimatesSchema(),
		Source:     listing.TenantSource(estimates.List, mappers.EstimateToRow),
		Aggregate:  func(rows []viewmodels.Estimate) any { return Stats(rows) },
	}
}

// Stats counts estimates per stage and sums open and closed values.
func Stats(rows []viewmodels.Estimate) viewmodels.EstimateStats {
	stats := viewmodels.EstimateStats{Total: len(rows)}
	prospecting, closed := decimal.Zero, decimal.Zero
	for _, r := range rows {
		status := estimate.Status(r.Status)
		switch status {
		case estimate.StatusDraft:
			stats.Draft++
		case estimate.StatusSent:
			stats.Sent++
		case estimate.StatusApproved, estimate.StatusConverted:
			stats.Approved++
		}
		switch {
		case status.Prospecting():
			prospecting = prospecting.Add(r.Total)
		case status.Closed():
			closed = closed.Add(r.Total)
		}
	}
	stats.ProspectingValue = mappers.FormatMoney(prospecting)
	stats.ClosedValue = mappers.FormatMoney(closed)
	return stats
}
