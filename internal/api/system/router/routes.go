// Package router registers the process-level routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/handler"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/middleware"
	apirouter "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/router"
)

// HealthPath is skipped by the rate limiter and logged at debug.
const HealthPath = "/api/v1/system/health"

func Register(v1 fiber.Router, _ *apirouter.Router) error {
	h, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("create system handler: %w", err)
	}
	apirouter.RegisterRouteWithMiddleware(v1, "/system", fiber.MethodGet, "/health", []fiber.Handler{middleware.Module("system")}, h.HandleHealth)
	return nil
}
