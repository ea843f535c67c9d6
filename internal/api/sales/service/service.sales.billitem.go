package salessvc

import (
	"context"
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/models"
	basesvc "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/service"
	salesmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/sales/models"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/global"
)

var BillItemFetchSpec = basemodels.FetchSpec{
	Lookups: []basemodels.Lookup{
		{Field: "product_id", From: global.MongoDB_ColNames.Products},
		{Field: "promotion", From: global.MongoDB_ColNames.Promotions},
	},
	IDFilters: map[string]string{
		"bill_id":    "bill_id",
		"product_id": "product_id",
	},
}

// BillItemService reads items directly and routes every write through
// the OrderService.
type BillItemService struct {
	*basesvc.BaseServiceMongoImpl[salesmodels.BillItem]
	orders *OrderService
}

func NewBillItemService() (*BillItemService, error) {
	coll, err := basesvc.CollectionFromRegistry(global.MongoDB_ColNames.BillItems)
	if err != nil {
		return nil, err
	}
	orders, err := NewOrderServiceFromRegistry()
	if err != nil {
		return nil, err
	}
	return &BillItemService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[salesmodels.BillItem](coll, "bill item", BillItemFetchSpec),
		orders:               orders,
	}, nil
}

func (s *BillItemService) Create(ctx context.Context, data salesmodels.BillItem) (salesmodels.BillItem, error) {
	data.FinalPrice = 0
	if err := s.Validate(data); err != nil {
		return salesmodels.BillItem{}, err
	}
	return s.orders.AddLineItem(ctx, data)
}

func (s *BillItemService) Update(ctx context.Context, id primitive.ObjectID, patch []byte) (salesmodels.BillItem, error) {
	existing, merged, err := s.Merge(ctx, id, patch)
	if err != nil {
		return salesmodels.BillItem{}, err
	}
	merged.FinalPrice = existing.FinalPrice
	merged = repriceOnProductChange(existing, merged, patch)
	if err := s.Validate(merged); err != nil {
		return salesmodels.BillItem{}, err
	}
	return s.orders.UpdateLineItem(ctx, existing, merged)
}

func (s *BillItemService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.orders.RemoveLineItem(ctx, id)
}

// repriceOnProductChange drops the stored unit price when the product
// changes and the patch carries no price, so the new product's price is used.
func repriceOnProductChange(existing, merged salesmodels.BillItem, patch []byte) salesmodels.BillItem {
	if merged.ProductID == existing.ProductID {
		return merged
	}
	fields := map[string]json.RawMessage{}
	_ = json.Unmarshal(patch, &fields)
	if _, ok := fields["price"]; !ok {
		merged.Price = nil
	}
	return merged
}
