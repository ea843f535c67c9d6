package main

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"

	basehdl "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/handler"
	catalogrouter "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/catalog/router"
	customerrouter "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/customer/router"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/middleware"
	reportrouter "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/report/router"
	apirouter "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/router"
	salesrouter "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/sales/router"
	staffrouter "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/staff/router"
	systemrouter "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/system/router"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/common"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/global"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/logger"
)

func splitOrigins(origins string) []string {
	if strings.TrimSpace(origins) == "*" || origins == "" {
		return []string{"*"}
	}
	out := []string{}
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// InitFiberApp builds the app with the middleware stack and every route.
func InitFiberApp() (*fiber.App, error) {
	cfg := global.MongoDB_ServerConfig

	app := fiber.New(fiber.Config{
		AppName:       "Supermarket API",
		StrictRouting: true,
		CaseSensitive: true,
		BodyLimit:     4 * 1024 * 1024,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  30 * time.Second,
		IdleTimeout:   120 * time.Second,
		ErrorHandler:  basehdl.FiberErrorHandler,
	})

	app.Use(requestid.New(requestid.Config{
		Header:    "X-Request-ID",
		Generator: uuid.NewString,
	}))
	app.Use(middleware.RequestContext())
	app.Use(middleware.RequestLogger(systemrouter.HealthPath))

	// before everything else that may reject, so preflights get answered
	app.Use(cors.New(cors.Config{
		AllowOrigins:     splitOrigins(cfg.CORS_Origins),
		AllowMethods:     []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		AllowCredentials: cfg.CORS_AllowCredentials,
		ExposeHeaders:    []string{"X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}))

	app.Use(middleware.SecurityHeaders())

	log := logger.GetAppLogger()
	if cfg.RateLimit_Enabled && cfg.RateLimit_Max > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:          cfg.RateLimit_Max,
			Expiration:   time.Duration(cfg.RateLimit_Window) * time.Second,
			KeyGenerator: func(c fiber.Ctx) string { return c.IP() },
			LimitReached: func(c fiber.Ctx) error {
				return basehdl.JSONResponse(c, fiber.StatusTooManyRequests, fiber.Map{
					"message": "too many requests",
					"code":    common.ErrCodeBusinessOperation.Code,
				})
			},
			Next: func(c fiber.Ctx) bool {
				return c.Path() == systemrouter.HealthPath || c.Method() == fiber.MethodOptions
			},
		}))
		log.Infof("rate limiting enabled: %d requests per %d seconds", cfg.RateLimit_Max, cfg.RateLimit_Window)
	} else {
		log.Info("rate limiting disabled")
	}

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.ErrorWithRequest(c).WithField("panic", e).Error("panic recovered")
		},
	}))

	err := apirouter.SetupRoutes(app,
		systemrouter.Register,
		customerrouter.Register,
		staffrouter.Register,
		catalogrouter.Register,
		salesrouter.Register,
		reportrouter.Register,
	)
	if err != nil {
		return nil, err
	}
	return app, nil
}
