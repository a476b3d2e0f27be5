package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/iota-uz/backoffice/pkg/composables"
	"github.com/iota-uz/backoffice/pkg/httpapi"
)

// RequireTenant resolves the tenant from header and rejects requests without
// a valid one.
func RequireTenant(header string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get(header))
			tenantID, err := uuid.Parse(raw)
			if err != nil || tenantID == uuid.Nil {
				logger := composables.UseLogger(r.Context())
				logger.WithField("header", header).WithField("path", r.URL.Path).Warn("missing or invalid tenant header")
				_ = httpapi.WriteError(w, http.StatusBadRequest, httpapi.CodeTenantRequired,
					"tenant header is missing or invalid", httpapi.RequestMeta(w, r))
				return
			}
			next.ServeHTTP(w, r.WithContext(composables.WithTenantID(r.Context(), tenantID)))
		})
	}
}
