// Package staffhdl serves /employee and /role.
package staffhdl

import (
	"fmt"

	basehdl "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/handler"
	staffmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/staff/models"
	staffsvc "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/staff/service"
)

type EmployeeHandler struct {
	basehdl.BaseHandler[staffmodels.Employee]
}

func NewEmployeeHandler() (*EmployeeHandler, error) {
	service, err := staffsvc.NewEmployeeService()
	if err != nil {
		return nil, fmt.Errorf("create employee service: %w", err)
	}
	return &EmployeeHandler{BaseHandler: *basehdl.NewBaseHandler[staffmodels.Employee](service)}, nil
}

type RoleHandler struct {
	basehdl.BaseHandler[staffmodels.Role]
}

func NewRoleHandler() (*RoleHandler, error) {
	service, err := staffsvc.NewRoleService()
	if err != nil {
		return nil, fmt.Errorf("create role service: %w", err)
	}
	return &RoleHandler{BaseHandler: *basehdl.NewBaseHandler[staffmodels.Role](service)}, nil
}
