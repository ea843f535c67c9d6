package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/config"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/registry"
)

// MongoDB_CollectionName lists the collection names used by the API.
type MongoDB_CollectionName struct {
	Customers  string
	Employees  string
	Roles      string
	Suppliers  string
	Categories string
	Products   string
	Promotions string
	Bills      string
	BillItems  string
}

var Validate *validator.Validate
var MongoDB_Session *mongo.Client
var MongoDB_ServerConfig *config.Configuration
var MongoDB_ColNames = DefaultColNames()

var RegistryCollections = registry.NewRegistry[*mongo.Collection]()
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()

// DefaultColNames returns the collection names the server uses.
func DefaultColNames() MongoDB_CollectionName {
	return MongoDB_CollectionName{
		Customers:  "customers",
		Employees:  "employees",
		Roles:      "roles",
		Suppliers:  "suppliers",
		Categories: "categories",
		Products:   "products",
		Promotions: "promotions",
		Bills:      "bills",
		BillItems:  "bill_items",
	}
}
