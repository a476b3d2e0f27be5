package bankaccount

import (
	"strings"

	"github.com/google/uuid"
)

// BankAccount is a cash, bank or crypto wallet account the company holds.
type BankAccount struct {
	id            uuid.UUID
	tenantID      uuid.UUID
	name          string
	accountType   string
	currency      string
	accountNumber string
	walletAddress string
	active        bool
}

func Hydrate(
	id uuid.UUID,
	tenantID uuid.UUID,
	name string,
	accountType string,
	currency string,
	accountNumber string,
	walletAddress string,
	active bool,
) BankAccount {
	return BankAccount{
		id:            id,
		tenantID:      tenantID,
		name:          strings.TrimSpace(name),
		accountType:   strings.TrimSpace(accountType),
		currency:      strings.ToUpper(strings.TrimSpace(currency)),
		accountNumber: strings.TrimSpace(accountNumber),
		walletAddress: strings.TrimSpace(walletAddress),
		active:        active,
	}
}

func (b BankAccount) ID() uuid.UUID         { return b.id }
func (b BankAccount) TenantID() uuid.UUID   { return b.tenantID }
func (b BankAccount) Name() string          { return b.name }
func (b BankAccount) Type() string          { return b.accountType }
func (b BankAccount) Currency() string      { return b.currency }
func (b BankAccount) AccountNumber() string { return b.accountNumber }
func (b BankAccount) WalletAddress() string { return b.walletAddress }
func (b BankAccount) Active() bool          { return b.active }
