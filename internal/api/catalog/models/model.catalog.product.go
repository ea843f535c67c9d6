package catalogmodels

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	ProductName string             `json:"product_name" bson:"product_name" validate:"required,max=200,no_xss" index:"unique"`
	Price       float64            `json:"price" bson:"price" validate:"gte=0"`
	SupplierID  primitive.ObjectID `json:"supplier_id" bson:"supplier_id" validate:"required" index:"single:1"`
	CategoryID  primitive.ObjectID `json:"category_id" bson:"category_id" validate:"required" index:"single:1"`
	Quantity    int                `json:"quantity" bson:"quantity" validate:"gte=0"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
