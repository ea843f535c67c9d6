// Package router registers the bill and bill item routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/middleware"
	apirouter "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/router"
	saleshdl "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/sales/handler"
)

func Register(v1 fiber.Router, r *apirouter.Router) error {
	billHandler, err := saleshdl.NewBillHandler()
	if err != nil {
		return fmt.Errorf("create bill handler: %w", err)
	}
	itemHandler, err := saleshdl.NewBillItemHandler()
	if err != nil {
		return fmt.Errorf("create bill item handler: %w", err)
	}

	module := middleware.Module("sales")
	r.RegisterCRUDRoutes(v1, "/bill", billHandler, apirouter.ReadWriteConfig, module)
	r.RegisterCRUDRoutes(v1, "/billitem", itemHandler, apirouter.ReadWriteConfig, module)
	return nil
}
