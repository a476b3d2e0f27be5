package viewmodels

import "github.com/shopspring/decimal"

// Estimate is one row of the estimates list page.
type Estimate struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	Customer    string          `json:"customer"`
	Status      string          `json:"status"`
	StatusLabel string          `json:"statusLabel"`
	Date        string          `json:"date"`
	ShipDate    string          `json:"shipDate"`
	Value       string          `json:"value"`
	Total       decimal.Decimal `json:"total"`
}

// EstimateStats feeds the header cards; it covers every fetched estimate,
// regardless of the active filters.
type EstimateStats struct {
	Total            int    `json:"total"`
	Draft            int    `json:"draft"`
	Sent             int    `json:"sent"`
	Approved         int    `json:"approved"`
	ProspectingValue string `json:"prospectingValue"`
	ClosedValue      string `json:"closedValue"`
}
