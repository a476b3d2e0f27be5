package controllers

import (
	"context"

	"github.com/iota-uz/backoffice/pkg/application"
	"github.com/iota-uz/backoffice/pkg/listing"
)

// ListingRoute binds a list page to the API path serving it. Modules
// publish their routes once; the HTTP server mounts them and the export
// tool renders them offline.
type ListingRoute interface {
	Path() string
	PageName() string
	Export(ctx context.Context, req listing.ExportRequest) (headers []string, cells [][]string, err error)
	// Mount builds the session service of the page and its controller.
	Mount(app application.Application) application.Controller
}

type listingRoute[R any] struct {
	path string
	page *listing.Page[R]
}

func NewListingRoute[R any](path string, page *listing.Page[R]) ListingRoute {
	return &listingRoute[R]{path: path, page: page}
}

func (r *listingRoute[R]) Path() string {
	return r.path
}

func (r *listingRoute[R]) PageName() string {
	return r.page.Name
}

func (r *listingRoute[R]) Export(ctx context.Context, req listing.ExportRequest) ([]string, [][]string, error) {
	return r.page.Export(ctx, req)
}

func (r *listingRoute[R]) Mount(app application.Application) application.Controller {
	svc := listing.NewService(r.page, app.Listings())
	app.RegisterServices(svc)
	return NewListingController(r.path, svc)
}

// MountListings registers one controller per route.
func MountListings(app application.Application, routes ...ListingRoute) {
	for _, route := range routes {
		app.RegisterControllers(route.Mount(app))
	}
}
