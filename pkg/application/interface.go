package application

import (
	"reflect"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iota-uz/backoffice/pkg/listing"
)

type Controller interface {
	Register(r *mux.Router)
	Key() string
}

// Module wires one back-office area (inventory, commercial, ...) into the
// application.
type Module interface {
	Name() string
	Register(app Application) error
}

// Application is the dependency container shared by modules.
type Application interface {
	DB() *pgxpool.Pool
	// Listings returns the options every list page service is built with.
	Listings() listing.Options
	Controllers() []Controller
	Middleware() []mux.MiddlewareFunc
	RegisterControllers(controllers ...Controller)
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)
	RegisterServices(services ...interface{})
	Service(service interface{}) interface{}
	Services() map[reflect.Type]interface{}
}
