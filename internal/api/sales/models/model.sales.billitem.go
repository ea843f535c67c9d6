package salesmodels

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BillItem is one product line on a bill. Price is the unit price at the
// time of sale and FinalPrice the discounted line total; both are set by
// the server.
type BillItem struct {
	ID         primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	BillID     primitive.ObjectID  `json:"bill_id" bson:"bill_id" validate:"required" index:"single:1"`
	ProductID  primitive.ObjectID  `json:"product_id" bson:"product_id" validate:"required" index:"single:1"`
	Quantity   int                 `json:"quantity" bson:"quantity" validate:"gte=1"`
	Price      *float64            `json:"price" bson:"price" validate:"omitempty,gte=0"`
	Promotion  *primitive.ObjectID `json:"promotion" bson:"promotion" index:"single:1"`
	FinalPrice float64             `json:"final_price" bson:"final_price" validate:"gte=0"`
	CreatedAt  time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at" bson:"updated_at"`
}

// UnitPrice is Price or 0 when unset.
func (i BillItem) UnitPrice() float64 {
	if i.Price == nil {
		return 0
	}
	return *i.Price
}
