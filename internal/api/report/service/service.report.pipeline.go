package reportsvc

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/global"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/utility"
)

func lookupOne(from, localField, as string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         from,
			"localField":   localField,
			"foreignField": "_id",
			"as":           as,
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$" + as, "preserveNullAndEmptyArrays": true}}},
	}
}

// BestSellingPipeline runs on bill_items: units sold per product, most
// first, ties broken by product id.
func BestSellingPipeline(limit int64) mongo.Pipeline {
	p := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":            "$product_id",
			"total_quantity": bson.M{"$sum": "$quantity"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "total_quantity", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}
	p = append(p, lookupOne(global.MongoDB_ColNames.Products, "_id", "product")...)
	return append(p, bson.D{{Key: "$project", Value: bson.M{
		"total_quantity": 1,
		"product_name":   "$product.product_name",
	}}})
}

// SupplierCatalogPipeline runs on suppliers: one row per product of every
// supplier whose name contains name.
func SupplierCatalogPipeline(name string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: utility.SearchFilter(name, "supplier_name")}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Products,
			"localField":   "_id",
			"foreignField": "supplier_id",
			"as":           "product",
		}}},
		{{Key: "$unwind", Value: "$product"}},
		{{Key: "$project", Value: bson.M{
			"_id":           0,
			"supplier_id":   "$_id",
			"supplier_name": 1,
			"product_id":    "$product._id",
			"product_name":  "$product.product_name",
			"quantity":      "$product.quantity",
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "supplier_name", Value: 1}, {Key: "product_name", Value: 1}}}},
	}
}

// RevenuePipeline runs on bills: revenue and bill count with
// transaction_time in [from, to].
func RevenuePipeline(from, to time.Time) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"transaction_time": bson.M{"$gte": from, "$lte": to}}}},
		{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"total_revenue": bson.M{"$sum": "$total_amount"},
			"bill_count":    bson.M{"$sum": 1},
		}}},
	}
}

// EmployeeRankingPipeline runs on bills: revenue per employee, highest first.
func EmployeeRankingPipeline(limit int64) mongo.Pipeline {
	p := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":           "$employee_id",
			"total_revenue": bson.M{"$sum": "$total_amount"},
			"bill_count":    bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "total_revenue", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}
	p = append(p, lookupOne(global.MongoDB_ColNames.Employees, "_id", "employee")...)
	return append(p, bson.D{{Key: "$project", Value: bson.M{
		"_id":           0,
		"employee_id":   "$_id",
		"first_name":    "$employee.first_name",
		"last_name":     "$employee.last_name",
		"total_revenue": 1,
		"bill_count":    1,
	}}})
}

// LowStockPipeline runs on products: quantity below threshold, optionally
// restricted to the category named category (case-insensitive).
func LowStockPipeline(category string, threshold int64) mongo.Pipeline {
	p := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"quantity": bson.M{"$lt": threshold}}}},
	}
	p = append(p, lookupOne(global.MongoDB_ColNames.Categories, "category_id", "category")...)
	if category != "" {
		p = append(p, bson.D{{Key: "$match", Value: bson.M{"category.category_name": utility.EqualsInsensitive(category)}}})
	}
	return append(p,
		bson.D{{Key: "$project", Value: bson.M{
			"_id":           0,
			"product_id":    "$_id",
			"product_name":  1,
			"quantity":      1,
			"category_name": "$category.category_name",
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "quantity", Value: 1}, {Key: "product_name", Value: 1}}}},
	)
}

// CustomerSpendPipeline runs on bills: total and count for one customer.
func CustomerSpendPipeline(customerID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"customer_id": customerID}}},
		{{Key: "$group", Value: bson.M{
			"_id":         nil,
			"total_spent": bson.M{"$sum": "$total_amount"},
			"bill_count":  bson.M{"$sum": 1},
		}}},
	}
}

// ActivePromotionsPipeline runs on promotions: those whose window overlaps
// [from, to]. from == to asks for one instant.
func ActivePromotionsPipeline(from, to time.Time) mongo.Pipeline {
	p := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"start_date": bson.M{"$lte": to},
			"end_date":   bson.M{"$gte": from},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "start_date", Value: 1}, {Key: "_id", Value: 1}}}},
	}
	p = append(p, lookupOne(global.MongoDB_ColNames.Products, "product_id", "product")...)
	return append(p, bson.D{{Key: "$project", Value: bson.M{
		"promotion_name": 1,
		"product_id":     1,
		"product_name":   "$product.product_name",
		"discount_type":  1,
		"discount_value": 1,
		"start_date":     1,
		"end_date":       1,
	}}})
}
