package composables

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/iota-uz/backoffice/pkg/constants"
)

var (
	ErrNoTenant  = errors.New("tenant not found in context")
	ErrNoSession = errors.New("session not found in context")
)

func WithTenantID(ctx context.Context, tenantID uuid.UUID) context.Context {
	return context.WithValue(ctx, constants.TenantIDKey, tenantID)
}

func UseTenantID(ctx context.Context) (uuid.UUID, error) {
	tenantID, ok := ctx.Value(constants.TenantIDKey).(uuid.UUID)
	if !ok || tenantID == uuid.Nil {
		return uuid.Nil, ErrNoTenant
	}
	return tenantID, nil
}

// WithSessionID stores the page-session id that scopes filter state.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, constants.SessionIDKey, sessionID)
}

func UseSessionID(ctx context.Context) (string, error) {
	sessionID, ok := ctx.Value(constants.SessionIDKey).(string)
	if !ok || sessionID == "" {
		return "", ErrNoSession
	}
	return sessionID, nil
}

func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, constants.LoggerKey, logger)
}

// UseLogger returns the request logger, or an entry on the standard logger
// outside of a request.
func UseLogger(ctx context.Context) *logrus.Entry {
	if logger, ok := ctx.Value(constants.LoggerKey).(*logrus.Entry); ok && logger != nil {
		return logger
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
