package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/config"
	catalogmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/catalog/models"
	customermodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/customer/models"
	salesmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/sales/models"
	staffmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/staff/models"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/database"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/global"
)

func InitGlobal() {
	initColNames()
	initValidator()
	initConfig()
	initDatabase_MongoDB()
}

func initColNames() {
	global.MongoDB_ColNames = global.DefaultColNames()
	logrus.Info("initialized collection names")
}

// no_xss and the JSON field names are registered by InitValidator
func initValidator() {
	global.InitValidator()
	logrus.Info("initialized validator")
}

func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatal("initialize config: config is nil")
	}
	logrus.Info("initialized server config")
}

// modelIndexes pairs every collection with the model whose index tags
// define its indexes.
func modelIndexes() map[string]interface{} {
	names := global.MongoDB_ColNames
	return map[string]interface{}{
		names.Customers:  customermodels.Customer{},
		names.Employees:  staffmodels.Employee{},
		names.Roles:      staffmodels.Role{},
		names.Suppliers:  catalogmodels.Supplier{},
		names.Categories: catalogmodels.Category{},
		names.Products:   catalogmodels.Product{},
		names.Promotions: catalogmodels.Promotion{},
		names.Bills:      salesmodels.Bill{},
		names.BillItems:  salesmodels.BillItem{},
	}
}

func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("get database instance: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := global.MongoDB_Session.Database(global.MongoDB_ServerConfig.DBName())
	if err := database.EnsureCollections(ctx, db, collectionNames()); err != nil {
		logrus.Fatalf("ensure collections: %v", err)
	}
	logrus.Info("ensured collections")

	for name, model := range modelIndexes() {
		if err := database.CreateIndexes(ctx, db.Collection(name), model); err != nil {
			logrus.WithError(err).WithField("collection", name).Error("create indexes")
		}
	}
	logrus.Info("created indexes")
}
