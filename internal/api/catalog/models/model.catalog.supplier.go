// Package catalogmodels holds the sellable catalog: products, their
// categories and suppliers, and product promotions.
package catalogmodels

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SupplierContacts struct {
	Person string `json:"person" bson:"person" validate:"max=100,no_xss"`
	Email  string `json:"email" bson:"email" validate:"omitempty,email"`
	Phone  string `json:"phone" bson:"phone" validate:"max=20"`
}

type SupplierAddress struct {
	Street     string `json:"street" bson:"street" validate:"max=200,no_xss"`
	City       string `json:"city" bson:"city" validate:"max=100,no_xss"`
	PostalCode string `json:"postal_code" bson:"postal_code" validate:"max=20"`
	Country    string `json:"country" bson:"country" validate:"max=100,no_xss"`
}

type Supplier struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	SupplierName string             `json:"supplier_name" bson:"supplier_name" validate:"required,max=200,no_xss" index:"single:1"`
	Contacts     SupplierContacts   `json:"contacts" bson:"contacts"`
	Address      SupplierAddress    `json:"address" bson:"address"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}
