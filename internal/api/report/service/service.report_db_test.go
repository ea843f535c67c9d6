package reportsvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/database/dbtest"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/global"
)

func TestBestSellingSumsQuantitiesPerProduct(t *testing.T) {
	db := dbtest.Open(t)
	names := global.MongoDB_ColNames
	svc := &ReportService{
		billItems: db.Collection(names.BillItems),
		products:  db.Collection(names.Products),
	}

	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	dbtest.Insert(t, svc.products,
		bson.M{"_id": a, "product_name": "Apple", "price": 1.5},
		bson.M{"_id": b, "product_name": "Bread", "price": 2.0},
	)
	dbtest.Insert(t, svc.billItems,
		bson.M{"product_id": a, "quantity": 3},
		bson.M{"product_id": b, "quantity": 5},
		bson.M{"product_id": a, "quantity": 2},
	)

	top, err := svc.BestSelling(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, a, top[0].ProductID)
	assert.Equal(t, "Apple", top[0].ProductName)
	assert.EqualValues(t, 5, top[0].TotalQuantity)

	dbtest.Insert(t, svc.billItems, bson.M{"product_id": b, "quantity": 1})
	all, err := svc.BestSelling(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, b, all[0].ProductID)
	assert.EqualValues(t, 6, all[0].TotalQuantity)
	assert.Equal(t, a, all[1].ProductID)
}
