package estimate

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusExpired   Status = "expired"
	StatusConverted Status = "converted"
)

// Prospecting estimates are still being negotiated.
func (s Status) Prospecting() bool {
	return s == StatusDraft || s == StatusSent
}

// Closed estimates were accepted by the customer.
func (s Status) Closed() bool {
	return s == StatusApproved || s == StatusConverted
}

type Estimate struct {
	id           uuid.UUID
	tenantID     uuid.UUID
	number       int64
	customerName string
	status       Status
	estimateDate time.Time
	shipDate     *time.Time
	total        decimal.Decimal
}

func Hydrate(
	id uuid.UUID,
	tenantID uuid.UUID,
	number int64,
	customerName string,
	status Status,
	estimateDate time.Time,
	shipDate *time.Time,
	total decimal.Decimal,
) Estimate {
	return Estimate{
		id:           id,
		tenantID:     tenantID,
		number:       number,
		customerName: strings.TrimSpace(customerName),
		status:       status,
		estimateDate: estimateDate,
		shipDate:     shipDate,
		total:        total,
	}
}

func (e Estimate) ID() uuid.UUID           { return e.id }
func (e Estimate) TenantID() uuid.UUID     { return e.tenantID }
func (e Estimate) Number() int64           { return e.number }
func (e Estimate) CustomerName() string    { return e.customerName }
func (e Estimate) Status() Status          { return e.status }
func (e Estimate) EstimateDate() time.Time { return e.estimateDate }
func (e Estimate) ShipDate() *time.Time    { return e.shipDate }
func (e Estimate) Total() decimal.Decimal  { return e.total }
