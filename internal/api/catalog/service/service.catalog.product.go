package catalogsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/models"
	basesvc "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/service"
	catalogmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/catalog/models"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/global"
)

var ProductFetchSpec = basemodels.FetchSpec{
	SearchFields: []string{"product_name"},
	Lookups: []basemodels.Lookup{
		{Field: "supplier_id", From: global.MongoDB_ColNames.Suppliers},
		{Field: "category_id", From: global.MongoDB_ColNames.Categories},
	},
	IDFilters: map[string]string{
		"supplier_id": "supplier_id",
		"category_id": "category_id",
	},
}

type ProductService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Product]
}

func NewProductService() (*ProductService, error) {
	coll, err := basesvc.CollectionFromRegistry(global.MongoDB_ColNames.Products)
	if err != nil {
		return nil, err
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Product](coll, "product", ProductFetchSpec),
	}, nil
}

func productRefs(p catalogmodels.Product) []basesvc.Ref {
	return []basesvc.Ref{
		{Field: "supplier_id", Collection: global.MongoDB_ColNames.Suppliers, ID: p.SupplierID},
		{Field: "category_id", Collection: global.MongoDB_ColNames.Categories, ID: p.CategoryID},
	}
}

func (s *ProductService) Create(ctx context.Context, data catalogmodels.Product) (catalogmodels.Product, error) {
	if err := s.Validate(data); err != nil {
		return catalogmodels.Product{}, err
	}
	if err := basesvc.CheckRefs(ctx, productRefs(data)...); err != nil {
		return catalogmodels.Product{}, err
	}
	return s.InsertOne(ctx, data)
}

func (s *ProductService) Update(ctx context.Context, id primitive.ObjectID, patch []byte) (catalogmodels.Product, error) {
	_, merged, err := s.Merge(ctx, id, patch)
	if err != nil {
		return catalogmodels.Product{}, err
	}
	if err := s.Validate(merged); err != nil {
		return catalogmodels.Product{}, err
	}
	if err := basesvc.CheckRefs(ctx, productRefs(merged)...); err != nil {
		return catalogmodels.Product{}, err
	}
	return s.Save(ctx, id, merged)
}
