package viewmodels

// Item is one row of the inventory list page; every field is display text.
type Item struct {
	ID           string `json:"id"`
	Model        string `json:"model"`
	Capacity     string `json:"capacity"`
	Color        string `json:"color"`
	Grade        string `json:"grade"`
	Status       string `json:"status"`
	Location     string `json:"location"`
	IMEI         string `json:"imei"`
	SerialNumber string `json:"serialNumber"`
	CreatedAt    string `json:"createdAt"`
}
