package basehdl

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/database"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/global"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/logger"
)

const (
	HealthOK       = "ok"
	HealthDegraded = "degraded"
	HealthError    = "error"
	HealthNoClient = "not_initialized"
)

// HealthStatus is the body of GET /system/health.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Time     string `json:"timestamp"`
}

// SystemHandler serves process-level endpoints.
type SystemHandler struct {
	client func() *mongo.Client
	ping   func(ctx context.Context, client *mongo.Client) error
	now    func() time.Time
}

func NewSystemHandler() (*SystemHandler, error) {
	return &SystemHandler{
		client: func() *mongo.Client { return global.MongoDB_Session },
		ping:   database.Ping,
		now:    time.Now,
	}, nil
}

// HandleHealth pings the database. 503 when the ping fails or no client
// is connected.
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	body := HealthStatus{Status: HealthOK, Database: HealthOK, Time: h.now().UTC().Format(time.RFC3339)}

	client := h.client()
	if client == nil {
		body.Status, body.Database = HealthDegraded, HealthNoClient
		return JSONResponse(c, fasthttp.StatusServiceUnavailable, body)
	}
	if err := h.ping(c.Context(), client); err != nil {
		logger.WithRequest(c).WithError(err).Warn("health check: database ping failed")
		body.Status, body.Database = HealthDegraded, HealthError
		return JSONResponse(c, fasthttp.StatusServiceUnavailable, body)
	}
	return JSONResponse(c, http.StatusOK, body)
}
