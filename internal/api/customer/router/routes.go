// Package router registers the customer routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	customerhdl "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/customer/handler"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/middleware"
	apirouter "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/router"
)

func Register(v1 fiber.Router, r *apirouter.Router) error {
	h, err := customerhdl.NewCustomerHandler()
	if err != nil {
		return fmt.Errorf("create customer handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/customer", h, apirouter.ReadWriteConfig, middleware.Module("customer"))
	return nil
}
