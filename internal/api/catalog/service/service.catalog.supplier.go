// Package catalogsvc holds the product, category, supplier and promotion
// repositories.
package catalogsvc

import (
	basemodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/models"
	basesvc "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/service"
	catalogmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/catalog/models"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/global"
)

var SupplierFetchSpec = basemodels.FetchSpec{
	SearchFields: []string{"supplier_name"},
}

type SupplierService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Supplier]
}

func NewSupplierService() (*SupplierService, error) {
	coll, err := basesvc.CollectionFromRegistry(global.MongoDB_ColNames.Suppliers)
	if err != nil {
		return nil, err
	}
	return &SupplierService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Supplier](coll, "supplier", SupplierFetchSpec),
	}, nil
}

var CategoryFetchSpec = basemodels.FetchSpec{
	SearchFields: []string{"category_name"},
}

type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Category]
}

func NewCategoryService() (*CategoryService, error) {
	coll, err := basesvc.CollectionFromRegistry(global.MongoDB_ColNames.Categories)
	if err != nil {
		return nil, err
	}
	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Category](coll, "category", CategoryFetchSpec),
	}, nil
}
