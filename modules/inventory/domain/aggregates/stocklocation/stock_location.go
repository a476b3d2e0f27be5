package stocklocation

import (
	"strings"

	"github.com/google/uuid"
)

// StockLocation is a place inventory is kept. Wind stock locations hold the
// sellable stock.
type StockLocation struct {
	id        uuid.UUID
	tenantID  uuid.UUID
	name      string
	city      string
	state     string
	address   string
	windStock bool
}

func Hydrate(id, tenantID uuid.UUID, name, city, state, address string, windStock bool) StockLocation {
	return StockLocation{
		id:        id,
		tenantID:  tenantID,
		name:      strings.TrimSpace(name),
		city:      strings.TrimSpace(city),
		state:     strings.TrimSpace(state),
		address:   strings.TrimSpace(address),
		windStock: windStock,
	}
}

func (l StockLocation) ID() uuid.UUID       { return l.id }
func (l StockLocation) TenantID() uuid.UUID { return l.tenantID }
func (l StockLocation) Name() string        { return l.name }
func (l StockLocation) City() string        { return l.city }
func (l StockLocation) State() string       { return l.state }
func (l StockLocation) Address() string     { return l.address }
func (l StockLocation) WindStock() bool     { return l.windStock }
