package agent

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is what a business partner is to the company. An agent may hold
// several roles.
type Role string

const (
	RoleCustomer         Role = "cliente"
	RoleStockSupplier    Role = "fornecedor_estoque"
	RoleFreight          Role = "frete"
	RoleCustomerCarrier  Role = "transportadora_cliente"
	RoleFreightForwarder Role = "freteiro"
	RoleProvider         Role = "prestador"
	RoleSupplies         Role = "suprimentos"
	RoleUtilities        Role = "utilidades"
	RoleConsulting       Role = "consultoria"
	RoleEmployee         Role = "colaborador"
	RolePartner          Role = "socio"
	RoleBank             Role = "banco"
	RoleCreditCard       Role = "cartao_credito"
	RoleInsurer          Role = "seguradora"
)

type PersonType string

const (
	Individual PersonType = "individual"
	Company    PersonType = "company"
)

type Agent struct {
	id         uuid.UUID
	tenantID   uuid.UUID
	name       string
	legalName  string
	taxID      string
	country    string
	personType PersonType
	roles      []Role
	deletedAt  *time.Time
}

func Hydrate(
	id uuid.UUID,
	tenantID uuid.UUID,
	name string,
	legalName string,
	taxID string,
	country string,
	personType PersonType,
	roles []Role,
	deletedAt *time.Time,
) Agent {
	return Agent{
		id:         id,
		tenantID:   tenantID,
		name:       strings.TrimSpace(name),
		legalName:  strings.TrimSpace(legalName),
		taxID:      strings.TrimSpace(taxID),
		country:    strings.TrimSpace(country),
		personType: personType,
		roles:      slices.Clone(roles),
		deletedAt:  deletedAt,
	}
}

func (a Agent) ID() uuid.UUID          { return a.id }
func (a Agent) TenantID() uuid.UUID    { return a.tenantID }
func (a Agent) Name() string           { return a.name }
func (a Agent) LegalName() string      { return a.legalName }
func (a Agent) TaxID() string          { return a.taxID }
func (a Agent) Country() string        { return a.country }
func (a Agent) PersonType() PersonType { return a.personType }
func (a Agent) Roles() []Role          { return slices.Clone(a.roles) }
func (a Agent) DeletedAt() *time.Time  { return a.deletedAt }

func (a Agent) HasRole(roles ...Role) bool {
	for _, r := range a.roles {
		if slices.Contains(roles, r) {
			return true
		}
	}
	return false
}
