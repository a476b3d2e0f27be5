package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// Cors lets the listed browser origins call the API with the session cookie.
func Cors(tenantHeader string, allowedOrigins ...string) mux.MiddlewareFunc {
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowedHeaders:   []string{"Content-Type", tenantHeader},
		ExposedHeaders:   []string{"X-Request-Id", "Content-Disposition"},
	})
	return c.Handler
}
