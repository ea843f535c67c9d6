// Package reporthdl serves the /report endpoints.
package reporthdl

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/handler"
	basemodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/models"
	reportmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/report/models"
	reportsvc "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/report/service"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/common"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/utility"
)

const (
	defaultReportLimit    = 10
	defaultStockThreshold = 10
)

// Reports is what the handler needs from the report service.
type Reports interface {
	BestSelling(ctx context.Context, limit int64) ([]reportmodels.BestSellingRow, error)
	SupplierCatalog(ctx context.Context, name string) ([]reportmodels.SupplierCatalogRow, error)
	Revenue(ctx context.Context, from, to time.Time) (reportmodels.RevenueSummary, error)
	EmployeeRanking(ctx context.Context, limit int64) ([]reportmodels.EmployeeRankingRow, error)
	LowStock(ctx context.Context, category string, threshold int64) ([]reportmodels.LowStockRow, error)
	CustomerSpend(ctx context.Context, phone string) (reportmodels.CustomerSpend, error)
	ActivePromotions(ctx context.Context, from, to time.Time) ([]reportmodels.ActivePromotionRow, error)
}

type ReportHandler struct {
	ReportService Reports
	now           func() time.Time
}

func NewReportHandler() (*ReportHandler, error) {
	service, err := reportsvc.NewReportService()
	if err != nil {
		return nil, fmt.Errorf("create report service: %w", err)
	}
	return NewReportHandlerWith(service), nil
}

func NewReportHandlerWith(reports Reports) *ReportHandler {
	return &ReportHandler{ReportService: reports, now: time.Now}
}

func list[T any](rows []T, limit int64) *basemodels.PaginateResult[T] {
	if limit <= 0 {
		limit = int64(len(rows))
	}
	return basemodels.NewPaginateResult(rows, int64(len(rows)), 1, limit)
}

func limitParam(c fiber.Ctx) int64 {
	limit := basehdl.QueryInt(c, "limit", defaultReportLimit)
	if limit <= 0 {
		return defaultReportLimit
	}
	if limit > basemodels.MaxLimit {
		return basemodels.MaxLimit
	}
	return limit
}

// dateParam parses key. A date-only value covers its whole day: the
// returned range runs from midnight to the last instant of the day.
func dateParam(c fiber.Ctx, key string) (from, to time.Time, err error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return from, to, common.FieldError(key, key+" is required")
	}
	t, dateOnly, err := utility.ParseDate(raw)
	if err != nil {
		return from, to, common.FieldError(key, key+" must be a date (YYYY-MM-DD or RFC 3339)")
	}
	if dateOnly {
		return t, utility.EndOfDay(t), nil
	}
	return t, t, nil
}

// BestSelling handles GET /best-selling?limit=
func (h *ReportHandler) BestSelling(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		limit := limitParam(c)
		rows, err := h.ReportService.BestSelling(c.Context(), limit)
		if err != nil {
			return err
		}
		return basehdl.JSONResponse(c, http.StatusOK, list(rows, limit))
	})
}

// SupplierCatalog handles GET /supplier-catalog?name=
func (h *ReportHandler) SupplierCatalog(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		name := strings.TrimSpace(c.Query("name"))
		if name == "" {
			return common.FieldError("name", "name is required")
		}
		rows, err := h.ReportService.SupplierCatalog(c.Context(), name)
		if err != nil {
			return err
		}
		return basehdl.JSONResponse(c, http.StatusOK, list(rows, 0))
	})
}

// Revenue handles GET /revenue?from=&to=
func (h *ReportHandler) Revenue(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		from, _, err := dateParam(c, "from")
		if err != nil {
			return err
		}
		_, to, err := dateParam(c, "to")
		if err != nil {
			return err
		}
		if to.Before(from) {
			return common.FieldError("to", "to must not be before from")
		}
		summary, err := h.ReportService.Revenue(c.Context(), from, to)
		return basehdl.HandleResponse(c, http.StatusOK, summary, err)
	})
}

// EmployeeRanking handles GET /employee-ranking?limit=
func (h *ReportHandler) EmployeeRanking(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		limit := limitParam(c)
		rows, err := h.ReportService.EmployeeRanking(c.Context(), limit)
		if err != nil {
			return err
		}
		return basehdl.JSONResponse(c, http.StatusOK, list(rows, limit))
	})
}

// LowStock handles GET /low-stock?category=&threshold=
func (h *ReportHandler) LowStock(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		threshold := basehdl.QueryInt(c, "threshold", defaultStockThreshold)
		if threshold < 0 {
			return common.FieldError("threshold", "threshold must be greater than or equal to 0")
		}
		rows, err := h.ReportService.LowStock(c.Context(), strings.TrimSpace(c.Query("category")), threshold)
		if err != nil {
			return err
		}
		return basehdl.JSONResponse(c, http.StatusOK, list(rows, 0))
	})
}

// CustomerSpend handles GET /customer-spend?phone=
func (h *ReportHandler) CustomerSpend(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		phone := strings.TrimSpace(c.Query("phone"))
		if phone == "" {
			return common.FieldError("phone", "phone is required")
		}
		spend, err := h.ReportService.CustomerSpend(c.Context(), phone)
		return basehdl.HandleResponse(c, http.StatusOK, spend, err)
	})
}

// ActivePromotions handles GET /active-promotions?date= (today when absent).
func (h *ReportHandler) ActivePromotions(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var from, to time.Time
		if c.Query("date") == "" {
			today := h.now().UTC().Truncate(24 * time.Hour)
			from, to = today, utility.EndOfDay(today)
		} else {
			var err error
			if from, to, err = dateParam(c, "date"); err != nil {
				return err
			}
		}
		rows, err := h.ReportService.ActivePromotions(c.Context(), from, to)
		if err != nil {
			return err
		}
		return basehdl.JSONResponse(c, http.StatusOK, list(rows, 0))
	})
}
