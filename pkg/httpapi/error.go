package httpapi

import (
	"encoding/json"
	"net/http"
)

// Stable error codes returned by the list page API.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeUnknownColumn  = "UNKNOWN_COLUMN"
	CodeTenantRequired = "TENANT_REQUIRED"
	CodeNoSession      = "SESSION_REQUIRED"
	CodeFetchFailed    = "FETCH_FAILED"
	CodeNotFound       = "NOT_FOUND"
	CodeMethodNotAllow = "METHOD_NOT_ALLOWED"
	CodeRateLimited    = "RATE_LIMITED"
	CodeInternal       = "INTERNAL_SERVER_ERROR"
)

// ErrorEnvelope standardizes JSON error responses for API namespaces.
type ErrorEnvelope struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Meta    map[string]string `json:"meta,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, code, message string, meta map[string]string) error {
	return WriteJSON(w, status, &ErrorEnvelope{
		Code:    code,
		Message: message,
		Meta:    meta,
	})
}

// RequestMeta carries the request id echoed by the logging middleware so
// clients can quote it in bug reports.
func RequestMeta(w http.ResponseWriter, r *http.Request) map[string]string {
	meta := map[string]string{"path": r.URL.Path}
	if id := w.Header().Get("X-Request-Id"); id != "" {
		meta["request_id"] = id
	}
	return meta
}
