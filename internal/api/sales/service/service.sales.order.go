// Package salessvc holds the bill and bill item repositories and the order
// service that keeps a bill's total in step with its items.
package salessvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/service"
	catalogmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/catalog/models"
	catalogsvc "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/catalog/service"
	salesmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/sales/models"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/common"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/database"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/global"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/logger"
)

// OrderService writes bill items and the matching bill aggregate in one
// transaction.
type OrderService struct {
	bills      BillStore
	items      BillItemStore
	products   ProductReader
	promotions PromotionReader
	tx         database.TxRunner
	now        func() time.Time
}

func NewOrderService(bills BillStore, items BillItemStore, products ProductReader, promotions PromotionReader, tx database.TxRunner) *OrderService {
	return &OrderService{
		bills:      bills,
		items:      items,
		products:   products,
		promotions: promotions,
		tx:         tx,
		now:        time.Now,
	}
}

// NewOrderServiceFromRegistry wires the Mongo-backed stores.
func NewOrderServiceFromRegistry() (*OrderService, error) {
	names := global.MongoDB_ColNames
	billColl, err := basesvc.CollectionFromRegistry(names.Bills)
	if err != nil {
		return nil, err
	}
	itemColl, err := basesvc.CollectionFromRegistry(names.BillItems)
	if err != nil {
		return nil, err
	}
	productColl, err := basesvc.CollectionFromRegistry(names.Products)
	if err != nil {
		return nil, err
	}
	promotionColl, err := basesvc.CollectionFromRegistry(names.Promotions)
	if err != nil {
		return nil, err
	}

	return NewOrderService(
		mongoBillStore{basesvc.NewBaseServiceMongo[salesmodels.Bill](billColl, "bill", BillFetchSpec)},
		mongoBillItemStore{basesvc.NewBaseServiceMongo[salesmodels.BillItem](itemColl, "bill item", BillItemFetchSpec)},
		mongoProductReader{basesvc.NewBaseServiceMongo[catalogmodels.Product](productColl, "product", catalogsvc.ProductFetchSpec)},
		mongoPromotionReader{basesvc.NewBaseServiceMongo[catalogmodels.Promotion](promotionColl, "promotion", catalogsvc.PromotionFetchSpec)},
		database.NewTxRunner(global.MongoDB_Session),
	), nil
}

// WithClock replaces the clock used to decide whether a promotion is active.
func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

// price fills Price from the product when unset and computes FinalPrice.
// The product must exist; a promotion id that resolves to nothing is a
// validation error on "promotion".
func (s *OrderService) price(ctx context.Context, item salesmodels.BillItem) (salesmodels.BillItem, error) {
	product, err := s.products.GetProduct(ctx, item.ProductID)
	if err != nil {
		return item, err
	}
	if item.Price == nil {
		unit := product.Price
		item.Price = &unit
	}

	var promo *catalogmodels.Promotion
	if item.Promotion != nil && !item.Promotion.IsZero() {
		p, err := s.promotions.GetPromotion(ctx, *item.Promotion)
		if errors.Is(err, common.ErrNotFound) {
			return item, common.FieldError("promotion", "promotion references a missing document")
		}
		if err != nil {
			return item, err
		}
		promo = &p
	}

	item.FinalPrice = LineTotal(*item.Price, item.Quantity, promo, s.now())
	return item, nil
}

// AddLineItem prices item and, in one transaction, inserts it and adds
// its final price and id to the parent bill. A missing bill or product is
// a 404 and nothing is written.
func (s *OrderService) AddLineItem(ctx context.Context, item salesmodels.BillItem) (salesmodels.BillItem, error) {
	item.ID = primitive.NilObjectID

	var created salesmodels.BillItem
	err := s.tx.RunInTransaction(ctx, func(tctx context.Context) error {
		if _, err := s.bills.GetBill(tctx, item.BillID); err != nil {
			return err
		}
		priced, err := s.price(tctx, item)
		if err != nil {
			return err
		}
		created, err = s.items.InsertItem(tctx, priced)
		if err != nil {
			return err
		}
		return s.bills.AdjustBill(tctx, item.BillID, salesmodels.BillChange{
			Delta:   created.FinalPrice,
			AddItem: created.ID,
		})
	})
	if err != nil {
		return salesmodels.BillItem{}, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"bill_id":     created.BillID.Hex(),
		"item_id":     created.ID.Hex(),
		"final_price": created.FinalPrice,
	}).Info("line item added")
	return created, nil
}

// UpdateLineItem re-prices merged and moves the bill total by the change
// in final price. The item cannot move to another bill.
func (s *OrderService) UpdateLineItem(ctx context.Context, existing, merged salesmodels.BillItem) (salesmodels.BillItem, error) {
	if merged.BillID != existing.BillID {
		return salesmodels.BillItem{}, common.FieldError("bill_id", "bill_id cannot be changed")
	}
	merged.ID = existing.ID
	merged.CreatedAt = existing.CreatedAt

	var updated salesmodels.BillItem
	err := s.tx.RunInTransaction(ctx, func(tctx context.Context) error {
		if _, err := s.bills.GetBill(tctx, merged.BillID); err != nil {
			return err
		}
		priced, err := s.price(tctx, merged)
		if err != nil {
			return err
		}
		updated, err = s.items.ReplaceItem(tctx, priced)
		if err != nil {
			return err
		}
		delta := Delta(existing.FinalPrice, updated.FinalPrice)
		if delta == 0 {
			return nil
		}
		return s.bills.AdjustBill(tctx, merged.BillID, salesmodels.BillChange{Delta: delta})
	})
	if err != nil {
		return salesmodels.BillItem{}, err
	}
	return updated, nil
}

// RemoveLineItem deletes the item and takes it off its bill. An item whose
// bill is already gone is still deleted.
func (s *OrderService) RemoveLineItem(ctx context.Context, id primitive.ObjectID) error {
	err := s.tx.RunInTransaction(ctx, func(tctx context.Context) error {
		item, err := s.items.GetItem(tctx, id)
		if err != nil {
			return err
		}
		if err := s.items.DeleteItem(tctx, id); err != nil {
			return err
		}
		err = s.bills.AdjustBill(tctx, item.BillID, salesmodels.BillChange{
			Delta:      Delta(item.FinalPrice, 0),
			RemoveItem: id,
		})
		if errors.Is(err, common.ErrNotFound) {
			logger.WithContext(tctx).WithField("bill_id", item.BillID.Hex()).Warn("deleted item of a missing bill")
			return nil
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("remove line item: %w", err)
	}
	return nil
}
