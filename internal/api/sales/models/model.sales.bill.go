// Package salesmodels holds bills and their line items.
package salesmodels

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bill is one checkout. TotalAmount and Products are owned by the line
// item service: TotalAmount is the sum of the items' final prices and
// Products lists the item ids in insertion order.
type Bill struct {
	ID              primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	CustomerID      *primitive.ObjectID  `json:"customer_id" bson:"customer_id" index:"single:1"`
	EmployeeID      primitive.ObjectID   `json:"employee_id" bson:"employee_id" validate:"required" index:"single:1"`
	TransactionTime time.Time            `json:"transaction_time" bson:"transaction_time" index:"single:-1"`
	Products        []primitive.ObjectID `json:"products" bson:"products"`
	TotalAmount     float64              `json:"total_amount" bson:"total_amount" validate:"gte=0"`
	CreatedAt       time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at" bson:"updated_at"`
}

// BillChange is an incremental edit of a bill's aggregate fields.
// Zero ids mean no change to Products.
type BillChange struct {
	Delta      float64
	AddItem    primitive.ObjectID
	RemoveItem primitive.ObjectID
}
