package account

import (
	"strings"

	"github.com/google/uuid"
)

type Type string

const (
	TypeAsset     Type = "Asset"
	TypeLiability Type = "Liability"
	TypeEquity    Type = "Equity"
	TypeRevenue   Type = "Revenue"
	TypeExpense   Type = "Expense"
)

type NormalBalance string

const (
	Debit  NormalBalance = "Debit"
	Credit NormalBalance = "Credit"
)

// Account is a financial class that carries an account code, i.e. an
// entry of the chart of accounts.
type Account struct {
	id            uuid.UUID
	tenantID      uuid.UUID
	code          string
	name          string
	accountType   Type
	subtype       string
	normalBalance NormalBalance
	active        bool
}

func Hydrate(
	id uuid.UUID,
	tenantID uuid.UUID,
	code string,
	name string,
	accountType Type,
	subtype string,
	normalBalance NormalBalance,
	active bool,
) Account {
	return Account{
		id:            id,
		tenantID:      tenantID,
		code:          strings.TrimSpace(code),
		name:          strings.TrimSpace(name),
		accountType:   accountType,
		subtype:       strings.TrimSpace(subtype),
		normalBalance: normalBalance,
		active:        active,
	}
}

func (a Account) ID() uuid.UUID                { return a.id }
func (a Account) TenantID() uuid.UUID          { return a.tenantID }
func (a Account) Code() string                 { return a.code }
func (a Account) Name() string                 { return a.name }
func (a Account) Type() Type                   { return a.accountType }
func (a Account) Subtype() string              { return a.subtype }
func (a Account) NormalBalance() NormalBalance { return a.normalBalance }
func (a Account) Active() bool                 { return a.active }
