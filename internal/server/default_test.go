package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/backoffice/modules"
	"github.com/iota-uz/backoffice/pkg/application"
	"github.com/iota-uz/backoffice/pkg/configuration"
	"github.com/iota-uz/backoffice/pkg/httpapi"
)

func TestDefault_Routes(t *testing.T) {
	t.Parallel()

	app := application.New(&application.ApplicationOptions{})
	require.NoError(t, modules.Load(app, modules.BuiltInModules...))

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	srv, err := Default(&DefaultOptions{
		Logger:        logger,
		Configuration: configuration.Use(),
		Application:   app,
	})
	require.NoError(t, err)
	router := srv.Router()

	type routeCase struct {
		name   string
		method string
		path   string
		status int
		code   string
	}
	cases := []routeCase{
		{"unknown api route", http.MethodGet, "/api/nope", http.StatusNotFound, httpapi.CodeNotFound},
	}
	for _, route := range modules.ListingRoutes(modules.BuiltInModules...) {
		cases = append(cases, routeCase{
			route.PageName() + " needs tenant", http.MethodGet, route.Path(), http.StatusBadRequest, httpapi.CodeTenantRequired,
		})
	}
	require.Len(t, cases, 22)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			require.Equal(t, tc.status, rec.Code)

			var env httpapi.ErrorEnvelope
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
			require.Equal(t, tc.code, env.Code)
			require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
		})
	}
}
