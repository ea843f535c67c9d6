// Package router registers the employee and role routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/middleware"
	apirouter "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/router"
	staffhdl "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/staff/handler"
)

func Register(v1 fiber.Router, r *apirouter.Router) error {
	employeeHandler, err := staffhdl.NewEmployeeHandler()
	if err != nil {
		return fmt.Errorf("create employee handler: %w", err)
	}
	roleHandler, err := staffhdl.NewRoleHandler()
	if err != nil {
		return fmt.Errorf("create role handler: %w", err)
	}

	module := middleware.Module("staff")
	r.RegisterCRUDRoutes(v1, "/employee", employeeHandler, apirouter.ReadWriteConfig, module)
	r.RegisterCRUDRoutes(v1, "/role", roleHandler, apirouter.ReadWriteConfig, module)
	return nil
}
