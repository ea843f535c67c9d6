// Package router mounts every domain under /api/v1.
package router

import (
	"github.com/gofiber/fiber/v3"
)

// CRUDHandler is the handler set behind the five entity routes.
type CRUDHandler interface {
	Fetch(c fiber.Ctx) error
	FetchById(c fiber.Ctx) error
	Create(c fiber.Ctx) error
	Update(c fiber.Ctx) error
	Delete(c fiber.Ctx) error
}

// Router carries the app so domain routers can reach it.
type Router struct {
	app *fiber.App
}

// CRUDConfig switches individual entity routes on or off.
type CRUDConfig struct {
	Fetch     bool
	FetchById bool
	Create    bool
	Update    bool
	Delete    bool
}

var (
	ReadOnlyConfig = CRUDConfig{Fetch: true, FetchById: true}

	ReadWriteConfig = CRUDConfig{
		Fetch: true, FetchById: true,
		Create: true, Update: true, Delete: true,
	}
)

// RoutePrefix holds the base prefixes of the API.
type RoutePrefix struct {
	Base string
	V1   string
}

func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

func NewRouter(app *fiber.App) *Router {
	return &Router{app: app}
}

func (r *Router) App() *fiber.App {
	return r.app
}

// RegisterRouteWithMiddleware mounts one route under prefix. Middlewares
// are attached to the prefix group with Use; passing them inline to
// Get/Post does not run them under fiber v3.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	group := router.Group(prefix)
	for _, mw := range middlewares {
		group.Use(mw)
	}
	addRoute(group, method, path, handler)
}

func addRoute(group fiber.Router, method, path string, handler fiber.Handler) {
	switch method {
	case fiber.MethodGet:
		group.Get(path, handler)
	case fiber.MethodPost:
		group.Post(path, handler)
	case fiber.MethodPut:
		group.Put(path, handler)
	case fiber.MethodDelete:
		group.Delete(path, handler)
	}
}

// RegisterCRUDRoutes mounts fetch, fetchById/:id, create, update/:id and
// delete/:id under prefix.
func (r *Router) RegisterCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler, config CRUDConfig, middlewares ...fiber.Handler) {
	group := router.Group(prefix)
	for _, mw := range middlewares {
		group.Use(mw)
	}

	if config.Fetch {
		addRoute(group, fiber.MethodGet, "/fetch", h.Fetch)
	}
	if config.FetchById {
		addRoute(group, fiber.MethodGet, "/fetchById/:id", h.FetchById)
	}
	if config.Create {
		addRoute(group, fiber.MethodPost, "/create", h.Create)
	}
	if config.Update {
		addRoute(group, fiber.MethodPut, "/update/:id", h.Update)
	}
	if config.Delete {
		addRoute(group, fiber.MethodDelete, "/delete/:id", h.Delete)
	}
}

// RegisterFunc is exported by each domain router.
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes groups /api/v1 and runs every domain's RegisterFunc in order.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
