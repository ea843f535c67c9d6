package salessvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/service"
	catalogmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/catalog/models"
	salesmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/sales/models"
)

//go:generate mockgen -source=service.sales.store.go -destination=mocks/mock_store.go -package=mocks

// BillStore is the bill side of a line-item write.
type BillStore interface {
	GetBill(ctx context.Context, id primitive.ObjectID) (salesmodels.Bill, error)
	AdjustBill(ctx context.Context, id primitive.ObjectID, change salesmodels.BillChange) error
}

type BillItemStore interface {
	GetItem(ctx context.Context, id primitive.ObjectID) (salesmodels.BillItem, error)
	InsertItem(ctx context.Context, item salesmodels.BillItem) (salesmodels.BillItem, error)
	ReplaceItem(ctx context.Context, item salesmodels.BillItem) (salesmodels.BillItem, error)
	DeleteItem(ctx context.Context, id primitive.ObjectID) error
}

type ProductReader interface {
	GetProduct(ctx context.Context, id primitive.ObjectID) (catalogmodels.Product, error)
}

type PromotionReader interface {
	GetPromotion(ctx context.Context, id primitive.ObjectID) (catalogmodels.Promotion, error)
}

// BillChangeUpdate is the single update document applied to the bill for
// change: $inc on total_amount plus $push or $pull on products.
func BillChangeUpdate(change salesmodels.BillChange, now time.Time) bson.M {
	update := bson.M{
		"$inc": bson.M{"total_amount": change.Delta},
		"$set": bson.M{"updated_at": now},
	}
	if !change.AddItem.IsZero() {
		update["$push"] = bson.M{"products": change.AddItem}
	}
	if !change.RemoveItem.IsZero() {
		update["$pull"] = bson.M{"products": change.RemoveItem}
	}
	return update
}

type mongoBillStore struct {
	*basesvc.BaseServiceMongoImpl[salesmodels.Bill]
}

func (s mongoBillStore) GetBill(ctx context.Context, id primitive.ObjectID) (salesmodels.Bill, error) {
	return s.FindOneById(ctx, id)
}

func (s mongoBillStore) AdjustBill(ctx context.Context, id primitive.ObjectID, change salesmodels.BillChange) error {
	_, err := s.UpdateById(ctx, id, BillChangeUpdate(change, time.Now().UTC()))
	return err
}

type mongoBillItemStore struct {
	*basesvc.BaseServiceMongoImpl[salesmodels.BillItem]
}

func (s mongoBillItemStore) GetItem(ctx context.Context, id primitive.ObjectID) (salesmodels.BillItem, error) {
	return s.FindOneById(ctx, id)
}

func (s mongoBillItemStore) InsertItem(ctx context.Context, item salesmodels.BillItem) (salesmodels.BillItem, error) {
	return s.InsertOne(ctx, item)
}

func (s mongoBillItemStore) ReplaceItem(ctx context.Context, item salesmodels.BillItem) (salesmodels.BillItem, error) {
	return s.Save(ctx, item.ID, item)
}

func (s mongoBillItemStore) DeleteItem(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteById(ctx, id)
}

type mongoProductReader struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Product]
}

func (s mongoProductReader) GetProduct(ctx context.Context, id primitive.ObjectID) (catalogmodels.Product, error) {
	return s.FindOneById(ctx, id)
}

type mongoPromotionReader struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Promotion]
}

func (s mongoPromotionReader) GetPromotion(ctx context.Context, id primitive.ObjectID) (catalogmodels.Promotion, error) {
	return s.FindOneById(ctx, id)
}
