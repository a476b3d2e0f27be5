package viewmodels

type Account struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Subtype       string `json:"subtype"`
	NormalBalance string `json:"normalBalance"`
	// Side is the DR/CR badge of the normal balance.
	Side   string `json:"side"`
	Active bool   `json:"active"`
}
