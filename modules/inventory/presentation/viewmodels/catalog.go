package viewmodels

type StockLocation struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	City      string `json:"city"`
	State     string `json:"state"`
	Address   string `json:"address"`
	WindStock bool   `json:"windStock"`
}

type ProductType struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	TrackingMethod string `json:"trackingMethod"`
}

type Manufacturer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Website string `json:"website"`
}

// Product is one catalog model. Year is display text so models without a
// release year can be filtered too.
type Product struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
	Year         string `json:"year"`
}
