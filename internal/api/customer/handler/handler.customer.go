// Package customerhdl serves /customer.
package customerhdl

import (
	"fmt"

	basehdl "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/handler"
	customermodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/customer/models"
	customersvc "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/customer/service"
)

type CustomerHandler struct {
	basehdl.BaseHandler[customermodels.Customer]
}

func NewCustomerHandler() (*CustomerHandler, error) {
	service, err := customersvc.NewCustomerService()
	if err != nil {
		return nil, fmt.Errorf("create customer service: %w", err)
	}
	return &CustomerHandler{BaseHandler: *basehdl.NewBaseHandler[customermodels.Customer](service)}, nil
}
