package customermodels

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer is a loyalty-program member. Bills keep their customer_id
// after the customer is deleted.
type Customer struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	FirstName    string             `json:"first_name" bson:"first_name" validate:"required,max=100,no_xss"`
	LastName     string             `json:"last_name" bson:"last_name" validate:"required,max=100,no_xss"`
	Email        string             `json:"email" bson:"email" validate:"required,email" index:"unique"`
	PhoneNumber  string             `json:"phone_number" bson:"phone_number" validate:"required,max=20" index:"single:1"`
	LoyaltyPoint int                `json:"loyalty_point" bson:"loyalty_point" validate:"gte=0"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}
