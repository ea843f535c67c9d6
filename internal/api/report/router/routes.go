// Package router registers the report routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/middleware"
	reporthdl "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/report/handler"
	apirouter "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/router"
)

func Register(v1 fiber.Router, r *apirouter.Router) error {
	h, err := reporthdl.NewReportHandler()
	if err != nil {
		return fmt.Errorf("create report handler: %w", err)
	}
	Mount(v1, h)
	return nil
}

// Mount attaches the report endpoints of h under /report.
func Mount(v1 fiber.Router, h *reporthdl.ReportHandler) {
	group := v1.Group("/report")
	group.Use(middleware.Module("report"))
	group.Get("/best-selling", h.BestSelling)
	group.Get("/supplier-catalog", h.SupplierCatalog)
	group.Get("/revenue", h.Revenue)
	group.Get("/employee-ranking", h.EmployeeRanking)
	group.Get("/low-stock", h.LowStock)
	group.Get("/customer-spend", h.CustomerSpend)
	group.Get("/active-promotions", h.ActivePromotions)
}
