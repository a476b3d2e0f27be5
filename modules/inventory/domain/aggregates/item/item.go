package item

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusAvailable Status = "Available"
	StatusReserved  Status = "Reserved"
	StatusSold      Status = "Sold"
	StatusRMA       Status = "RMA"
	StatusDamaged   Status = "Damaged"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusAvailable, StatusSold, StatusReserved, StatusRMA, StatusDamaged}

// Location is the stock location an item sits in.
type Location struct {
	Name      string
	WindStock bool
}

type Item struct {
	id           uuid.UUID
	tenantID     uuid.UUID
	model        string
	capacity     string
	color        string
	grade        string
	status       Status
	imei         string
	serialNumber string
	location     *Location
	createdAt    time.Time
}

func Hydrate(
	id uuid.UUID,
	tenantID uuid.UUID,
	model string,
	capacity string,
	color string,
	grade string,
	status Status,
	imei string,
	serialNumber string,
	location *Location,
	createdAt time.Time,
) Item {
	return Item{
		id:           id,
		tenantID:     tenantID,
		model:        strings.TrimSpace(model),
		capacity:     strings.TrimSpace(capacity),
		color:        strings.TrimSpace(color),
		grade:        strings.TrimSpace(grade),
		status:       status,
		imei:         strings.TrimSpace(imei),
		serialNumber: strings.TrimSpace(serialNumber),
		location:     location,
		createdAt:    createdAt,
	}
}

func (i Item) ID() uuid.UUID        { return i.id }
func (i Item) TenantID() uuid.UUID  { return i.tenantID }
func (i Item) Model() string        { return i.model }
func (i Item) Capacity() string     { return i.capacity }
func (i Item) Color() string        { return i.color }
func (i Item) Grade() string        { return i.grade }
func (i Item) Status() Status       { return i.status }
func (i Item) IMEI() string         { return i.imei }
func (i Item) SerialNumber() string { return i.serialNumber }
func (i Item) Location() *Location  { return i.location }
func (i Item) CreatedAt() time.Time { return i.createdAt }

// InWindStock is true for items in a wind stock location or in none.
func (i Item) InWindStock() bool {
	return i.location == nil || i.location.WindStock
}
