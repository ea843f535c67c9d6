package catalogsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/models"
	basesvc "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/service"
	catalogmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/catalog/models"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/common"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/global"
)

var PromotionFetchSpec = basemodels.FetchSpec{
	SearchFields: []string{"promotion_name"},
	Lookups: []basemodels.Lookup{
		{Field: "product_id", From: global.MongoDB_ColNames.Products},
	},
	IDFilters: map[string]string{"product_id": "product_id"},
}

type PromotionService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Promotion]
}

func NewPromotionService() (*PromotionService, error) {
	coll, err := basesvc.CollectionFromRegistry(global.MongoDB_ColNames.Promotions)
	if err != nil {
		return nil, err
	}
	return &PromotionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Promotion](coll, "promotion", PromotionFetchSpec),
	}, nil
}

// CheckDiscount enforces the rule the tags cannot express: a percent
// discount cannot exceed 100.
func CheckDiscount(p catalogmodels.Promotion) error {
	if p.DiscountType == catalogmodels.DiscountPercent && p.DiscountValue > catalogmodels.MaxPercentDiscount {
		return common.FieldError("discount_value",
			fmt.Sprintf("discount_value must be less than or equal to %d for percent discounts", catalogmodels.MaxPercentDiscount))
	}
	return nil
}

func (s *PromotionService) check(ctx context.Context, p catalogmodels.Promotion) error {
	if err := s.Validate(p); err != nil {
		return err
	}
	if err := CheckDiscount(p); err != nil {
		return err
	}
	return basesvc.CheckRefs(ctx, basesvc.Ref{Field: "product_id", Collection: global.MongoDB_ColNames.Products, ID: p.ProductID})
}

func (s *PromotionService) Create(ctx context.Context, data catalogmodels.Promotion) (catalogmodels.Promotion, error) {
	if err := s.check(ctx, data); err != nil {
		return catalogmodels.Promotion{}, err
	}
	return s.InsertOne(ctx, data)
}

func (s *PromotionService) Update(ctx context.Context, id primitive.ObjectID, patch []byte) (catalogmodels.Promotion, error) {
	_, merged, err := s.Merge(ctx, id, patch)
	if err != nil {
		return catalogmodels.Promotion{}, err
	}
	if err := s.check(ctx, merged); err != nil {
		return catalogmodels.Promotion{}, err
	}
	return s.Save(ctx, id, merged)
}
