package viewmodels

type Agent struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	LegalName string `json:"legalName"`
	TaxID     string `json:"taxId"`
	Country   string `json:"country"`
	// PersonType is PF for individuals and PJ for companies.
	PersonType string   `json:"personType"`
	Roles      []string `json:"roles"`
}

// AgentStats backs the header cards of the agents dashboard.
type AgentStats struct {
	Total          int `json:"total"`
	Suppliers      int `json:"suppliers"`
	StockSuppliers int `json:"stockSuppliers"`
	Customers      int `json:"customers"`
	Providers      int `json:"providers"`
}
