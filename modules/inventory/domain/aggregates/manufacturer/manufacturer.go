package manufacturer

import (
	"strings"

	"github.com/google/uuid"
)

type Manufacturer struct {
	id       uuid.UUID
	tenantID uuid.UUID
	name     string
	website  string
}

func Hydrate(id, tenantID uuid.UUID, name, website string) Manufacturer {
	return Manufacturer{
		id:       id,
		tenantID: tenantID,
		name:     strings.TrimSpace(name),
		website:  strings.TrimSpace(website),
	}
}

func (m Manufacturer) ID() uuid.UUID       { return m.id }
func (m Manufacturer) TenantID() uuid.UUID { return m.tenantID }
func (m Manufacturer) Name() string        { return m.name }
func (m Manufacturer) Website() string     { return m.website }
