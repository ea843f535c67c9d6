// Package staffmodels holds employees and their roles.
package staffmodels

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MinRoleSalary is the lowest salary a role may carry.
const MinRoleSalary = 10000

type Role struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	RoleName        string             `json:"role_name" bson:"role_name" validate:"required,max=100,no_xss"`
	RoleDescription string             `json:"role_description" bson:"role_description" validate:"max=500,no_xss"`
	RoleSalary      float64            `json:"role_salary" bson:"role_salary" validate:"required,gte=10000"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}
