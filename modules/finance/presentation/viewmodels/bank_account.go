package viewmodels

type BankAccount struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Currency      string `json:"currency"`
	AccountNumber string `json:"accountNumber"`
	WalletAddress string `json:"walletAddress"`
	// Status is "active" or "inactive".
	Status string `json:"status"`
}
