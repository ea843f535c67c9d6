package salessvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	catalogmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/catalog/models"
	salesmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/sales/models"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/sales/service/mocks"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/common"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type orderMocks struct {
	bills      *mocks.MockBillStore
	items      *mocks.MockBillItemStore
	products   *mocks.MockProductReader
	promotions *mocks.MockPromotionReader
	tx         *mocks.MockTxRunner
}

func newOrderService(t *testing.T) (*OrderService, orderMocks) {
	ctrl := gomock.NewController(t)
	m := orderMocks{
		bills:      mocks.NewMockBillStore(ctrl),
		items:      mocks.NewMockBillItemStore(ctrl),
		products:   mocks.NewMockProductReader(ctrl),
		promotions: mocks.NewMockPromotionReader(ctrl),
		tx:         mocks.NewMockTxRunner(ctrl),
	}
	m.tx.EXPECT().RunInTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	svc := NewOrderService(m.bills, m.items, m.products, m.promotions, m.tx).
		WithClock(func() time.Time { return fixedNow })
	return svc, m
}

func price(v float64) *float64 { return &v }

func promotion(kind string, value float64, start, end time.Time) catalogmodels.Promotion {
	return catalogmodels.Promotion{
		ID:            primitive.NewObjectID(),
		PromotionName: "promo",
		DiscountType:  kind,
		DiscountValue: value,
		StartDate:     start,
		EndDate:       end,
	}
}

func TestAddLineItem(t *testing.T) {
	active := func(kind string, v float64) catalogmodels.Promotion {
		return promotion(kind, v, fixedNow.AddDate(0, 0, -1), fixedNow.AddDate(0, 0, 1))
	}
	expired := promotion(catalogmodels.DiscountPercent, 50, fixedNow.AddDate(0, -2, 0), fixedNow.AddDate(0, -1, 0))

	testCases := []struct {
		name         string
		productPrice float64
		unitPrice    *float64
		quantity     int
		clientFinal  float64
		promo        *catalogmodels.Promotion
		wantPrice    float64
		wantFinal    float64
	}{
		{name: "no_promotion_uses_product_price", productPrice: 10, quantity: 3, wantPrice: 10, wantFinal: 30},
		{name: "percent_discount", productPrice: 100, quantity: 1, promo: ptr(active(catalogmodels.DiscountPercent, 10)), wantPrice: 100, wantFinal: 90},
		{name: "amount_discount_per_unit", productPrice: 100, quantity: 2, promo: ptr(active(catalogmodels.DiscountAmount, 5)), wantPrice: 100, wantFinal: 190},
		{name: "amount_discount_floors_at_zero", productPrice: 3, quantity: 2, promo: ptr(active(catalogmodels.DiscountAmount, 5)), wantPrice: 3, wantFinal: 0},
		{name: "expired_promotion_ignored", productPrice: 40, quantity: 2, promo: &expired, wantPrice: 40, wantFinal: 80},
		{name: "supplied_price_wins", productPrice: 99, unitPrice: price(12.5), quantity: 2, wantPrice: 12.5, wantFinal: 25},
		{name: "client_final_price_ignored", productPrice: 10, quantity: 3, clientFinal: 1, wantPrice: 10, wantFinal: 30},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newOrderService(t)
			billID := primitive.NewObjectID()
			productID := primitive.NewObjectID()
			itemID := primitive.NewObjectID()

			input := salesmodels.BillItem{
				BillID:     billID,
				ProductID:  productID,
				Quantity:   tc.quantity,
				Price:      tc.unitPrice,
				FinalPrice: tc.clientFinal,
			}
			if tc.promo != nil {
				input.Promotion = &tc.promo.ID
				m.promotions.EXPECT().GetPromotion(gomock.Any(), tc.promo.ID).Return(*tc.promo, nil)
			}

			m.bills.EXPECT().GetBill(gomock.Any(), billID).Return(salesmodels.Bill{ID: billID}, nil)
			m.products.EXPECT().GetProduct(gomock.Any(), productID).Return(catalogmodels.Product{ID: productID, Price: tc.productPrice}, nil)
			m.items.EXPECT().InsertItem(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, item salesmodels.BillItem) (salesmodels.BillItem, error) {
					require.NotNil(t, item.Price)
					assert.Equal(t, tc.wantPrice, *item.Price)
					assert.Equal(t, tc.wantFinal, item.FinalPrice)
					item.ID = itemID
					return item, nil
				})
			m.bills.EXPECT().AdjustBill(gomock.Any(), billID, salesmodels.BillChange{Delta: tc.wantFinal, AddItem: itemID}).Return(nil)

			got, err := svc.AddLineItem(context.Background(), input)
			require.NoError(t, err)
			assert.Equal(t, itemID, got.ID)
			assert.Equal(t, tc.wantFinal, got.FinalPrice)
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestAddLineItemMissingBillWritesNothing(t *testing.T) {
	svc, m := newOrderService(t)
	billID := primitive.NewObjectID()

	m.bills.EXPECT().GetBill(gomock.Any(), billID).Return(salesmodels.Bill{}, common.NotFound("bill"))

	_, err := svc.AddLineItem(context.Background(), salesmodels.BillItem{BillID: billID, ProductID: primitive.NewObjectID(), Quantity: 1})
	require.Error(t, err)
	assert.Equal(t, 404, common.StatusOf(err))
}

func TestAddLineItemMissingProduct(t *testing.T) {
	svc, m := newOrderService(t)
	billID, productID := primitive.NewObjectID(), primitive.NewObjectID()

	m.bills.EXPECT().GetBill(gomock.Any(), billID).Return(salesmodels.Bill{ID: billID}, nil)
	m.products.EXPECT().GetProduct(gomock.Any(), productID).Return(catalogmodels.Product{}, common.NotFound("product"))

	_, err := svc.AddLineItem(context.Background(), salesmodels.BillItem{BillID: billID, ProductID: productID, Quantity: 1})
	assert.Equal(t, 404, common.StatusOf(err))
}

func TestAddLineItemUnknownPromotion(t *testing.T) {
	svc, m := newOrderService(t)
	billID, productID, promoID := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()

	m.bills.EXPECT().GetBill(gomock.Any(), billID).Return(salesmodels.Bill{ID: billID}, nil)
	m.products.EXPECT().GetProduct(gomock.Any(), productID).Return(catalogmodels.Product{ID: productID, Price: 5}, nil)
	m.promotions.EXPECT().GetPromotion(gomock.Any(), promoID).Return(catalogmodels.Promotion{}, common.NotFound("promotion"))

	_, err := svc.AddLineItem(context.Background(), salesmodels.BillItem{BillID: billID, ProductID: productID, Quantity: 1, Promotion: &promoID})
	require.Error(t, err)

	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.StatusCode)
	assert.Contains(t, appErr.Fields, "promotion")
}

func TestAddLineItemBillUpdateFailureAborts(t *testing.T) {
	svc, m := newOrderService(t)
	billID, productID := primitive.NewObjectID(), primitive.NewObjectID()
	boom := common.ConvertMongoError(errors.New("write conflict"))

	m.bills.EXPECT().GetBill(gomock.Any(), billID).Return(salesmodels.Bill{ID: billID}, nil)
	m.products.EXPECT().GetProduct(gomock.Any(), productID).Return(catalogmodels.Product{ID: productID, Price: 2}, nil)
	m.items.EXPECT().InsertItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item salesmodels.BillItem) (salesmodels.BillItem, error) {
			item.ID = primitive.NewObjectID()
			return item, nil
		})
	m.bills.EXPECT().AdjustBill(gomock.Any(), billID, gomock.Any()).Return(boom)

	_, err := svc.AddLineItem(context.Background(), salesmodels.BillItem{BillID: billID, ProductID: productID, Quantity: 1})
	assert.ErrorIs(t, err, boom)
}

func TestUpdateLineItemAppliesDelta(t *testing.T) {
	svc, m := newOrderService(t)
	billID, productID, itemID := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()

	existing := salesmodels.BillItem{ID: itemID, BillID: billID, ProductID: productID, Quantity: 3, Price: price(10), FinalPrice: 30}
	merged := existing
	merged.Quantity = 5
	merged.FinalPrice = 999

	m.bills.EXPECT().GetBill(gomock.Any(), billID).Return(salesmodels.Bill{ID: billID}, nil)
	m.products.EXPECT().GetProduct(gomock.Any(), productID).Return(catalogmodels.Product{ID: productID, Price: 12}, nil)
	m.items.EXPECT().ReplaceItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item salesmodels.BillItem) (salesmodels.BillItem, error) {
			assert.Equal(t, 50.0, item.FinalPrice)
			return item, nil
		})
	m.bills.EXPECT().AdjustBill(gomock.Any(), billID, salesmodels.BillChange{Delta: 20}).Return(nil)

	got, err := svc.UpdateLineItem(context.Background(), existing, merged)
	require.NoError(t, err)
	assert.Equal(t, 50.0, got.FinalPrice)
}

func TestUpdateLineItemRejectsBillChange(t *testing.T) {
	svc, _ := newOrderService(t)
	existing := salesmodels.BillItem{ID: primitive.NewObjectID(), BillID: primitive.NewObjectID()}
	merged := existing
	merged.BillID = primitive.NewObjectID()

	_, err := svc.UpdateLineItem(context.Background(), existing, merged)
	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Fields, "bill_id")
}

func TestRemoveLineItem(t *testing.T) {
	svc, m := newOrderService(t)
	billID, itemID := primitive.NewObjectID(), primitive.NewObjectID()

	m.items.EXPECT().GetItem(gomock.Any(), itemID).Return(salesmodels.BillItem{ID: itemID, BillID: billID, FinalPrice: 19.9}, nil)
	m.items.EXPECT().DeleteItem(gomock.Any(), itemID).Return(nil)
	m.bills.EXPECT().AdjustBill(gomock.Any(), billID, salesmodels.BillChange{Delta: -19.9, RemoveItem: itemID}).Return(nil)

	require.NoError(t, svc.RemoveLineItem(context.Background(), itemID))
}

func TestRemoveLineItemOfMissingBill(t *testing.T) {
	svc, m := newOrderService(t)
	billID, itemID := primitive.NewObjectID(), primitive.NewObjectID()

	m.items.EXPECT().GetItem(gomock.Any(), itemID).Return(salesmodels.BillItem{ID: itemID, BillID: billID, FinalPrice: 5}, nil)
	m.items.EXPECT().DeleteItem(gomock.Any(), itemID).Return(nil)
	m.bills.EXPECT().AdjustBill(gomock.Any(), billID, gomock.Any()).Return(common.NotFound("bill"))

	assert.NoError(t, svc.RemoveLineItem(context.Background(), itemID))
}

func TestRemoveLineItemNotFound(t *testing.T) {
	svc, m := newOrderService(t)
	itemID := primitive.NewObjectID()
	m.items.EXPECT().GetItem(gomock.Any(), itemID).Return(salesmodels.BillItem{}, common.NotFound("bill item"))

	err := svc.RemoveLineItem(context.Background(), itemID)
	assert.Equal(t, 404, common.StatusOf(err))
}

func TestUpdateLineItemNewProductUsesItsPrice(t *testing.T) {
	svc, m := newOrderService(t)
	billID, oldProduct, newProduct, itemID := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()

	existing := salesmodels.BillItem{ID: itemID, BillID: billID, ProductID: oldProduct, Quantity: 2, Price: price(10), FinalPrice: 20}
	moved := existing
	moved.ProductID = newProduct
	merged := repriceOnProductChange(existing, moved, []byte(`{"product_id":"`+newProduct.Hex()+`"}`))

	m.bills.EXPECT().GetBill(gomock.Any(), billID).Return(salesmodels.Bill{ID: billID}, nil)
	m.products.EXPECT().GetProduct(gomock.Any(), newProduct).Return(catalogmodels.Product{ID: newProduct, Price: 4}, nil)
	m.items.EXPECT().ReplaceItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item salesmodels.BillItem) (salesmodels.BillItem, error) {
			return item, nil
		})
	m.bills.EXPECT().AdjustBill(gomock.Any(), billID, salesmodels.BillChange{Delta: -12}).Return(nil)

	got, err := svc.UpdateLineItem(context.Background(), existing, merged)
	require.NoError(t, err)
	assert.Equal(t, 4.0, *got.Price)
	assert.Equal(t, 8.0, got.FinalPrice)
}
