package salessvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/models"
	basesvc "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/service"
	salesmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/sales/models"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/common"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/database"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/global"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/logger"
)

// BillFetchSpec has no text search; bills are filtered by customer or
// employee and come back with both expanded along with their items.
var BillFetchSpec = basemodels.FetchSpec{
	Lookups: []basemodels.Lookup{
		{Field: "customer_id", From: global.MongoDB_ColNames.Customers},
		{Field: "employee_id", From: global.MongoDB_ColNames.Employees},
		{Field: "products", From: global.MongoDB_ColNames.BillItems, Many: true},
	},
	IDFilters: map[string]string{
		"customer_id": "customer_id",
		"employee_id": "employee_id",
	},
}

type BillService struct {
	*basesvc.BaseServiceMongoImpl[salesmodels.Bill]
	items *mongo.Collection
	tx    database.TxRunner
	now   func() time.Time
}

func NewBillService() (*BillService, error) {
	coll, err := basesvc.CollectionFromRegistry(global.MongoDB_ColNames.Bills)
	if err != nil {
		return nil, err
	}
	items, err := basesvc.CollectionFromRegistry(global.MongoDB_ColNames.BillItems)
	if err != nil {
		return nil, err
	}
	return &BillService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[salesmodels.Bill](coll, "bill", BillFetchSpec),
		items:                items,
		tx:                   database.NewTxRunner(global.MongoDB_Session),
		now:                  time.Now,
	}, nil
}

// PrepareNewBill drops client-supplied aggregate fields and defaults the
// transaction time.
func PrepareNewBill(b salesmodels.Bill, now time.Time) salesmodels.Bill {
	b.TotalAmount = 0
	b.Products = []primitive.ObjectID{}
	if b.TransactionTime.IsZero() {
		b.TransactionTime = now.UTC()
	}
	return b
}

func billRefs(b salesmodels.Bill) []basesvc.Ref {
	return []basesvc.Ref{
		{Field: "customer_id", Collection: global.MongoDB_ColNames.Customers, ID: basesvc.OptionalRef(b.CustomerID)},
		{Field: "employee_id", Collection: global.MongoDB_ColNames.Employees, ID: b.EmployeeID},
	}
}

func (s *BillService) Create(ctx context.Context, data salesmodels.Bill) (salesmodels.Bill, error) {
	data = PrepareNewBill(data, s.now())
	if err := s.Validate(data); err != nil {
		return salesmodels.Bill{}, err
	}
	if err := basesvc.CheckRefs(ctx, billRefs(data)...); err != nil {
		return salesmodels.Bill{}, err
	}
	return s.InsertOne(ctx, data)
}

// Update changes the header fields only. total_amount and products are
// left to the line item writes so a concurrent item insert is not lost.
func (s *BillService) Update(ctx context.Context, id primitive.ObjectID, patch []byte) (salesmodels.Bill, error) {
	existing, merged, err := s.Merge(ctx, id, patch)
	if err != nil {
		return salesmodels.Bill{}, err
	}
	merged.TotalAmount = existing.TotalAmount
	merged.Products = existing.Products
	if merged.TransactionTime.IsZero() {
		merged.TransactionTime = existing.TransactionTime
	}
	if err := s.Validate(merged); err != nil {
		return salesmodels.Bill{}, err
	}
	if err := basesvc.CheckRefs(ctx, billRefs(merged)...); err != nil {
		return salesmodels.Bill{}, err
	}
	return s.Save(ctx, id, merged, "total_amount", "products")
}

// Delete removes the bill and all of its items in one transaction.
func (s *BillService) Delete(ctx context.Context, id primitive.ObjectID) error {
	var removed int64
	err := s.tx.RunInTransaction(ctx, func(tctx context.Context) error {
		if err := s.DeleteById(tctx, id); err != nil {
			return err
		}
		qctx, cancel := database.QueryContext(tctx)
		defer cancel()
		res, err := s.items.DeleteMany(qctx, bson.M{"bill_id": id})
		if err != nil {
			return common.ConvertMongoError(err)
		}
		removed = res.DeletedCount
		return nil
	})
	if err != nil {
		return err
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"bill_id": id.Hex(),
		"items":   removed,
	}).Info("bill deleted")
	return nil
}
