package viewmodels

type Class struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Group               string `json:"group"`
	DRECategory         string `json:"dreCategory"`
	CapitalFlowCategory string `json:"capitalFlowCategory"`
}

type CostCenter struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
