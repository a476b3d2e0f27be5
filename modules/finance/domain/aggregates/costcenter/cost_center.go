package costcenter

import (
	"strings"

	"github.com/google/uuid"
)

type CostCenter struct {
	id          uuid.UUID
	tenantID    uuid.UUID
	code        string
	name        string
	description string
}

func Hydrate(id uuid.UUID, tenantID uuid.UUID, code, name, description string) CostCenter {
	return CostCenter{
		id:          id,
		tenantID:    tenantID,
		code:        strings.TrimSpace(code),
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
	}
}

func (c CostCenter) ID() uuid.UUID       { return c.id }
func (c CostCenter) TenantID() uuid.UUID { return c.tenantID }
func (c CostCenter) Code() string        { return c.code }
func (c CostCenter) Name() string        { return c.name }
func (c CostCenter) Description() string { return c.description }
