package class

import (
	"strings"

	"github.com/google/uuid"
)

// Class is a financial class: the category a payable or receivable is
// booked under, linked to its group and to the DRE and cash flow reports.
type Class struct {
	id                  uuid.UUID
	tenantID            uuid.UUID
	name                string
	group               string
	dreCategory         string
	capitalFlowCategory string
}

func Hydrate(
	id uuid.UUID,
	tenantID uuid.UUID,
	name string,
	group string,
	dreCategory string,
	capitalFlowCategory string,
) Class {
	return Class{
		id:                  id,
		tenantID:            tenantID,
		name:                strings.TrimSpace(name),
		group:               strings.TrimSpace(group),
		dreCategory:         strings.TrimSpace(dreCategory),
		capitalFlowCategory: strings.TrimSpace(capitalFlowCategory),
	}
}

func (c Class) ID() uuid.UUID               { return c.id }
func (c Class) TenantID() uuid.UUID         { return c.tenantID }
func (c Class) Name() string                { return c.name }
func (c Class) Group() string               { return c.group }
func (c Class) DRECategory() string         { return c.dreCategory }
func (c Class) CapitalFlowCategory() string { return c.capitalFlowCategory }
