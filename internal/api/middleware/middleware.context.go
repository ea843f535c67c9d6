// Package middleware holds the request-scoped fiber handlers shared by
// every route.
package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/logger"
)

// RequestContext copies the request id into the request's context.Context
// so service-level logs can be correlated. Must run after requestid.New.
func RequestContext() fiber.Handler {
	return func(c fiber.Ctx) error {
		rid := requestid.FromContext(c)
		if rid == "" {
			rid = c.Get(fiber.HeaderXRequestID)
		}
		if rid != "" {
			c.SetContext(logger.ContextWithRequestID(c.Context(), rid))
		}
		return c.Next()
	}
}

// Module tags every log line written while serving the group with name.
func Module(name string) fiber.Handler {
	return func(c fiber.Ctx) error {
		c.Locals("module", name)
		c.SetContext(logger.ContextWithModule(c.Context(), name))
		return c.Next()
	}
}
