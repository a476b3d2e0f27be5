package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/iota-uz/backoffice/modules/core/presentation/controllers/dtos"
	"github.com/iota-uz/backoffice/pkg/application"
	"github.com/iota-uz/backoffice/pkg/colfilter"
	"github.com/iota-uz/backoffice/pkg/composables"
	"github.com/iota-uz/backoffice/pkg/configuration"
	"github.com/iota-uz/backoffice/pkg/excel"
	"github.com/iota-uz/backoffice/pkg/httpapi"
	"github.com/iota-uz/backoffice/pkg/listing"
	"github.com/iota-uz/backoffice/pkg/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ListingResponse is the page payload: filter state plus the visible rows.
type ListingResponse[R any] struct {
	listing.Snapshot
	Rows []R `json:"rows"`
}

// ListingController exposes one list page under basePath.
type ListingController[R any] struct {
	basePath string
	service  *listing.Service[R]
}

func NewListingController[R any](basePath string, service *listing.Service[R]) application.Controller {
	return &ListingController[R]{
		basePath: basePath,
		service:  service,
	}
}

func (c *ListingController[R]) Key() string {
	return c.basePath
}

func (c *ListingController[R]) Register(r *mux.Router) {
	conf := configuration.Use()
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(
		middleware.RequireTenant(conf.TenantHeader),
		middleware.WithSession(middleware.SessionOptions{
			CookieName: conf.SidCookieKey,
			TTL:        conf.Filters.SessionTTL,
			Secure:     conf.GoAppEnvironment == configuration.Production,
		}),
	)

	page := c.service.Page().Name
	router.HandleFunc("", c.View).Methods(http.MethodGet).Name(middleware.RouteName(page, "view"))
	router.HandleFunc("/export.xlsx", c.Export).Methods(http.MethodGet).Name(middleware.RouteName(page, "export"))
	router.HandleFunc("/search", c.Search).Methods(http.MethodPut).Name(middleware.RouteName(page, "search"))
	router.HandleFunc("/filters/clear", c.Clear).Methods(http.MethodPost).Name(middleware.RouteName(page, "clear"))
	router.HandleFunc("/filters/{column}/toggle", c.Toggle).Methods(http.MethodPost).Name(middleware.RouteName(page, "toggle"))
	router.HandleFunc("/filters/{column}/toggle-all", c.ToggleAll).Methods(http.MethodPost).Name(middleware.RouteName(page, "toggle-all"))
	router.HandleFunc("/filters/{column}/only", c.Only).Methods(http.MethodPost).Name(middleware.RouteName(page, "only"))
	router.HandleFunc("/filters/{column}/select-all", c.SelectAll).Methods(http.MethodPost).Name(middleware.RouteName(page, "select-all"))
	router.HandleFunc("/filters/{column}/options", c.Options).Methods(http.MethodGet).Name(middleware.RouteName(page, "options"))
}

func (c *ListingController[R]) View(w http.ResponseWriter, r *http.Request) {
	res, err := c.service.View(r.Context())
	c.respond(w, r, res, err)
}

func (c *ListingController[R]) Toggle(w http.ResponseWriter, r *http.Request) {
	var dto dtos.ToggleDTO
	if err := decodeJSON(w, r, &dto); err != nil {
		c.writeError(w, r, err)
		return
	}
	res, err := c.service.Toggle(r.Context(), mux.Vars(r)["column"], *dto.Value)
	c.respond(w, r, res, err)
}

func (c *ListingController[R]) ToggleAll(w http.ResponseWriter, r *http.Request) {
	res, err := c.service.ToggleAll(r.Context(), mux.Vars(r)["column"])
	c.respond(w, r, res, err)
}

// Only backs the quick filters: show the rows of one column value.
func (c *ListingController[R]) Only(w http.ResponseWriter, r *http.Request) {
	var dto dtos.ToggleDTO
	if err := decodeJSON(w, r, &dto); err != nil {
		c.writeError(w, r, err)
		return
	}
	res, err := c.service.Only(r.Context(), mux.Vars(r)["column"], *dto.Value)
	c.respond(w, r, res, err)
}

func (c *ListingController[R]) SelectAll(w http.ResponseWriter, r *http.Request) {
	res, err := c.service.SelectAll(r.Context(), mux.Vars(r)["column"])
	c.respond(w, r, res, err)
}

func (c *ListingController[R]) Search(w http.ResponseWriter, r *http.Request) {
	var dto dtos.SearchDTO
	if err := decodeJSON(w, r, &dto); err != nil {
		c.writeError(w, r, err)
		return
	}
	res, err := c.service.SetSearch(r.Context(), dto.Term)
	c.respond(w, r, res, err)
}

func (c *ListingController[R]) Clear(w http.ResponseWriter, r *http.Request) {
	res, err := c.service.Clear(r.Context())
	c.respond(w, r, res, err)
}

func (c *ListingController[R]) Options(w http.ResponseWriter, r *http.Request) {
	column := mux.Vars(r)["column"]
	query := r.URL.Query().Get("q")
	options, err := c.service.Options(r.Context(), column, query)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, &dtos.OptionsDTO{
		Column:  column,
		Query:   query,
		Options: options,
	})
}

func (c *ListingController[R]) Export(w http.ResponseWriter, r *http.Request) {
	headers, cells, err := c.service.Export(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	name := c.service.Page().Name
	var buf bytes.Buffer
	if err := excel.Write(&buf, name, headers, cells); err != nil {
		c.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".xlsx"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to write export")
	}
}

func (c *ListingController[R]) respond(w http.ResponseWriter, r *http.Request, res listing.Result[R], err error) {
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	rows := res.Rows
	if rows == nil {
		rows = []R{}
	}
	writeJSON(w, r, http.StatusOK, &ListingResponse[R]{Snapshot: res.Snapshot, Rows: rows})
}

func (c *ListingController[R]) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, colfilter.ErrUnknownColumn):
		writeJSONError(w, r, http.StatusNotFound, httpapi.CodeUnknownColumn, err.Error())
	case errors.Is(err, composables.ErrNoTenant):
		writeJSONError(w, r, http.StatusBadRequest, httpapi.CodeTenantRequired, err.Error())
	case errors.Is(err, composables.ErrNoSession):
		writeJSONError(w, r, http.StatusBadRequest, httpapi.CodeNoSession, err.Error())
	case errors.Is(err, errInvalidBody), errors.As(err, &validationErrs):
		writeJSONError(w, r, http.StatusBadRequest, httpapi.CodeInvalidRequest, err.Error())
	case errors.Is(err, listing.ErrFetchFailed):
		composables.UseLogger(r.Context()).WithError(err).Error("list page fetch failed")
		writeJSONError(w, r, http.StatusServiceUnavailable, httpapi.CodeFetchFailed, "could not load rows")
	default:
		composables.UseLogger(r.Context()).WithError(err).Error("list page request failed")
		writeJSONError(w, r, http.StatusInternalServerError, httpapi.CodeInternal, "internal server error")
	}
}
