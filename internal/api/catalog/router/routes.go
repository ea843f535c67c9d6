// Package router registers the catalog routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/catalog/handler"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/middleware"
	apirouter "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/router"
)

func Register(v1 fiber.Router, r *apirouter.Router) error {
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("create product handler: %w", err)
	}
	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("create category handler: %w", err)
	}
	supplierHandler, err := cataloghdl.NewSupplierHandler()
	if err != nil {
		return fmt.Errorf("create supplier handler: %w", err)
	}
	promotionHandler, err := cataloghdl.NewPromotionHandler()
	if err != nil {
		return fmt.Errorf("create promotion handler: %w", err)
	}

	module := middleware.Module("catalog")
	r.RegisterCRUDRoutes(v1, "/product", productHandler, apirouter.ReadWriteConfig, module)
	r.RegisterCRUDRoutes(v1, "/category", categoryHandler, apirouter.ReadWriteConfig, module)
	r.RegisterCRUDRoutes(v1, "/supplier", supplierHandler, apirouter.ReadWriteConfig, module)
	r.RegisterCRUDRoutes(v1, "/promotion", promotionHandler, apirouter.ReadWriteConfig, module)
	return nil
}
