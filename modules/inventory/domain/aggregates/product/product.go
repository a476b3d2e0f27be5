package product

import (
	"strings"

	"github.com/google/uuid"
)

// Product is a catalog model, e.g. "iPhone 13" by Apple of type Smartphone.
type Product struct {
	id           uuid.UUID
	tenantID     uuid.UUID
	name         string
	productType  string
	manufacturer string
	releaseYear  int
}

// Hydrate takes a zero releaseYear for models without a known year.
func Hydrate(id, tenantID uuid.UUID, name, productType, manufacturer string, releaseYear int) Product {
	return Product{
		id:           id,
		tenantID:     tenantID,
		name:         strings.TrimSpace(name),
		productType:  strings.TrimSpace(productType),
		manufacturer: strings.TrimSpace(manufacturer),
		releaseYear:  releaseYear,
	}
}

func (p Product) ID() uuid.UUID        { return p.id }
func (p Product) TenantID() uuid.UUID  { return p.tenantID }
func (p Product) Name() string         { return p.name }
func (p Product) Type() string         { return p.productType }
func (p Product) Manufacturer() string { return p.manufacturer }
func (p Product) ReleaseYear() int     { return p.releaseYear }
