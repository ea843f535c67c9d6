package catalogmodels

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID                  primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	CategoryName        string             `json:"category_name" bson:"category_name" validate:"required,max=100,no_xss" index:"unique"`
	CategoryDescription string             `json:"category_description" bson:"category_description" validate:"max=500,no_xss"`
	CreatedAt           time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at" bson:"updated_at"`
}
