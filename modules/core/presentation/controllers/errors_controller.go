package controllers

import (
	"net/http"
	"strings"

	"github.com/iota-uz/backoffice/pkg/httpapi"
)

const apiPrefix = "/api/"

func NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, apiPrefix) {
			writeJSONError(w, r, http.StatusNotFound, httpapi.CodeNotFound, "not found")
			return
		}
		http.NotFound(w, r)
	}
}

func MethodNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, apiPrefix) {
			writeJSONError(w, r, http.StatusMethodNotAllowed, httpapi.CodeMethodNotAllow, "method not allowed")
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
