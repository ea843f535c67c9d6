package catalogmodels

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DiscountPercent = "percent"
	DiscountAmount  = "amount"

	MaxPercentDiscount = 100
)

// Promotion discounts one product between StartDate and EndDate, both
// inclusive. A percent value is a percentage of the line subtotal; an
// amount value is taken off each unit.
type Promotion struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PromotionName string             `json:"promotion_name" bson:"promotion_name" validate:"required,max=200,no_xss"`
	ProductID     primitive.ObjectID `json:"product_id" bson:"product_id" validate:"required" index:"single:1"`
	DiscountType  string             `json:"discount_type" bson:"discount_type" validate:"required,oneof=percent amount"`
	DiscountValue float64            `json:"discount_value" bson:"discount_value" validate:"gte=0"`
	StartDate     time.Time          `json:"start_date" bson:"start_date" validate:"required" index:"compound:start_end_date"`
	EndDate       time.Time          `json:"end_date" bson:"end_date" validate:"required,gtefield=StartDate" index:"compound:start_end_date"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// ActiveAt reports whether t falls inside the promotion window.
func (p Promotion) ActiveAt(t time.Time) bool {
	return !t.Before(p.StartDate) && !t.After(p.EndDate)
}
