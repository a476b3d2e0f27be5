package producttype

import (
	"strings"

	"github.com/google/uuid"
)

// TrackingMethod tells whether units are tracked one by one or counted.
type TrackingMethod string

const (
	TrackSerial   TrackingMethod = "serial"
	TrackQuantity TrackingMethod = "quantity"
)

type ProductType struct {
	id             uuid.UUID
	tenantID       uuid.UUID
	name           string
	trackingMethod TrackingMethod
}

func Hydrate(id, tenantID uuid.UUID, name string, trackingMethod TrackingMethod) ProductType {
	return ProductType{
		id:             id,
		tenantID:       tenantID,
		name:           strings.TrimSpace(name),
		trackingMethod: trackingMethod,
	}
}

func (t ProductType) ID() uuid.UUID                  { return t.id }
func (t ProductType) TenantID() uuid.UUID            { return t.tenantID }
func (t ProductType) Name() string                   { return t.name }
func (t ProductType) TrackingMethod() TrackingMethod { return t.trackingMethod }
