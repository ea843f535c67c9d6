// Package cataloghdl serves /product, /category, /supplier and /promotion.
package cataloghdl

import (
	"fmt"

	basehdl "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/handler"
	catalogmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/catalog/models"
	catalogsvc "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/catalog/service"
)

type ProductHandler struct {
	basehdl.BaseHandler[catalogmodels.Product]
}

func NewProductHandler() (*ProductHandler, error) {
	service, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("create product service: %w", err)
	}
	return &ProductHandler{BaseHandler: *basehdl.NewBaseHandler[catalogmodels.Product](service)}, nil
}

type CategoryHandler struct {
	basehdl.BaseHandler[catalogmodels.Category]
}

func NewCategoryHandler() (*CategoryHandler, error) {
	service, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("create category service: %w", err)
	}
	return &CategoryHandler{BaseHandler: *basehdl.NewBaseHandler[catalogmodels.Category](service)}, nil
}

type SupplierHandler struct {
	basehdl.BaseHandler[catalogmodels.Supplier]
}

func NewSupplierHandler() (*SupplierHandler, error) {
	service, err := catalogsvc.NewSupplierService()
	if err != nil {
		return nil, fmt.Errorf("create supplier service: %w", err)
	}
	return &SupplierHandler{BaseHandler: *basehdl.NewBaseHandler[catalogmodels.Supplier](service)}, nil
}

type PromotionHandler struct {
	basehdl.BaseHandler[catalogmodels.Promotion]
}

func NewPromotionHandler() (*PromotionHandler, error) {
	service, err := catalogsvc.NewPromotionService()
	if err != nil {
		return nil, fmt.Errorf("create promotion service: %w", err)
	}
	return &PromotionHandler{BaseHandler: *basehdl.NewBaseHandler[catalogmodels.Promotion](service)}, nil
}
