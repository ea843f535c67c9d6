// Package reportmodels holds the rows returned by the read-only reports.
package reportmodels

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BestSellingRow struct {
	ProductID     primitive.ObjectID `json:"product_id" bson:"_id"`
	ProductName   string             `json:"product_name" bson:"product_name"`
	TotalQuantity int64              `json:"total_quantity" bson:"total_quantity"`
}

type SupplierCatalogRow struct {
	SupplierID   primitive.ObjectID `json:"supplier_id" bson:"supplier_id"`
	SupplierName string             `json:"supplier_name" bson:"supplier_name"`
	ProductID    primitive.ObjectID `json:"product_id" bson:"product_id"`
	ProductName  string             `json:"product_name" bson:"product_name"`
	Quantity     int64              `json:"quantity" bson:"quantity"`
}

type RevenueSummary struct {
	From         time.Time `json:"from" bson:"-"`
	To           time.Time `json:"to" bson:"-"`
	TotalRevenue float64   `json:"total_revenue" bson:"total_revenue"`
	BillCount    int64     `json:"bill_count" bson:"bill_count"`
}

type EmployeeRankingRow struct {
	EmployeeID   primitive.ObjectID `json:"employee_id" bson:"employee_id"`
	FirstName    string             `json:"first_name" bson:"first_name"`
	LastName     string             `json:"last_name" bson:"last_name"`
	TotalRevenue float64            `json:"total_revenue" bson:"total_revenue"`
	BillCount    int64              `json:"bill_count" bson:"bill_count"`
}

type LowStockRow struct {
	ProductID    primitive.ObjectID `json:"product_id" bson:"product_id"`
	ProductName  string             `json:"product_name" bson:"product_name"`
	Quantity     int64              `json:"quantity" bson:"quantity"`
	CategoryName string             `json:"category_name" bson:"category_name"`
}

type CustomerSpend struct {
	CustomerID  primitive.ObjectID `json:"customer_id" bson:"customer_id"`
	FirstName   string             `json:"first_name" bson:"first_name"`
	LastName    string             `json:"last_name" bson:"last_name"`
	PhoneNumber string             `json:"phone_number" bson:"phone_number"`
	TotalSpent  float64            `json:"total_spent" bson:"total_spent"`
	BillCount   int64              `json:"bill_count" bson:"bill_count"`
}

type ActivePromotionRow struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id"`
	PromotionName string             `json:"promotion_name" bson:"promotion_name"`
	ProductID     primitive.ObjectID `json:"product_id" bson:"product_id"`
	ProductName   string             `json:"product_name" bson:"product_name"`
	DiscountType  string             `json:"discount_type" bson:"discount_type"`
	DiscountValue float64            `json:"discount_value" bson:"discount_value"`
	StartDate     time.Time          `json:"start_date" bson:"start_date"`
	EndDate       time.Time          `json:"end_date" bson:"end_date"`
}
