package staffmodels

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

type Employee struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	FirstName   string             `json:"first_name" bson:"first_name" validate:"required,max=100,no_xss"`
	LastName    string             `json:"last_name" bson:"last_name" validate:"required,max=100,no_xss"`
	PhoneNumber string             `json:"phone_number" bson:"phone_number" validate:"required,max=20"`
	Gender      string             `json:"gender" bson:"gender" validate:"required,oneof=male female other"`
	RoleID      primitive.ObjectID `json:"role_id" bson:"role_id" validate:"required" index:"single:1"`
	HireDate    time.Time          `json:"hire_date" bson:"hire_date"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
