// Package itf builds request-shaped contexts and pgx stand-ins for tests.
package itf

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/iota-uz/backoffice/pkg/composables"
)

// TestContext provides a fluent API for building test contexts
type TestContext struct {
	ctx       context.Context
	tenantID  uuid.UUID
	sessionID string
	tx        pgx.Tx
}

// NewTestContext starts with a random tenant and session.
func NewTestContext() *TestContext {
	return &TestContext{
		ctx:       context.Background(),
		tenantID:  uuid.New(),
		sessionID: uuid.NewString(),
	}
}

func (tc *TestContext) WithTenant(tenantID uuid.UUID) *TestContext {
	tc.tenantID = tenantID
	return tc
}

func (tc *TestContext) WithSession(sessionID string) *TestContext {
	tc.sessionID = sessionID
	return tc
}

// WithTx installs tx as the ambient transaction, so repositories and
// composables.InTenantTx use it instead of a pool.
func (tc *TestContext) WithTx(tx pgx.Tx) *TestContext {
	tc.tx = tx
	return tc
}

func (tc *TestContext) TenantID() uuid.UUID {
	return tc.tenantID
}

func (tc *TestContext) Build() context.Context {
	ctx := composables.WithTenantID(tc.ctx, tc.tenantID)
	if tc.sessionID != "" {
		ctx = composables.WithSessionID(ctx, tc.sessionID)
	}
	if tc.tx != nil {
		ctx = composables.WithTx(ctx, tc.tx)
	}
	return ctx
}
