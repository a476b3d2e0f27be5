package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/iota-uz/backoffice/pkg/composables"
	"github.com/iota-uz/backoffice/pkg/constants"
	"github.com/iota-uz/backoffice/pkg/httpapi"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	if err := httpapi.WriteJSON(w, status, payload); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to encode response")
	}
}

func writeJSONError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	if err := httpapi.WriteError(w, status, code, message, httpapi.RequestMeta(w, r)); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to encode error response")
	}
}

var errInvalidBody = errors.New("invalid JSON body")

// decodeJSON reads a single JSON document into dst and validates it.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errInvalidBody, err)
	}
	if err := constants.Validate.Struct(dst); err != nil {
		return err
	}
	return nil
}
