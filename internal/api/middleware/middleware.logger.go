package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/logger"
)

// RequestLogger writes one line per request once the handler chain returns.
// Health checks are logged at debug level.
func RequestLogger(skipPaths ...string) fiber.Handler {
	quiet := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		quiet[p] = true
	}

	return func(c fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()

		status := c.Response().StatusCode()
		if chainErr != nil {
			if fe, ok := chainErr.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		entry := logger.WithRequest(c).WithFields(logrus.Fields{
			"status":  status,
			"latency": time.Since(start).String(),
		})
		if module, ok := c.Locals("module").(string); ok {
			entry = entry.WithField("module", module)
		}

		switch {
		case quiet[c.Path()]:
			entry.Debug("request")
		case status >= fiber.StatusInternalServerError:
			entry.Warn("request")
		default:
			entry.Info("request")
		}
		return chainErr
	}
}
