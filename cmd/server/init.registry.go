package main

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/config"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/global"
)

func collectionNames() []string {
	n := global.MongoDB_ColNames
	return []string{n.Customers, n.Employees, n.Roles, n.Suppliers, n.Categories, n.Products, n.Promotions, n.Bills, n.BillItems}
}

func InitRegistry() {
	if err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig); err != nil {
		logrus.Fatalf("initialize collections: %v", err)
	}
	logrus.Info("initialized collection registry")
}

// InitCollections registers a handle for every collection the services use.
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.DBName())
	if _, err := global.RegistryDatabase.Register(db.Name(), db); err != nil {
		return err
	}
	for _, name := range collectionNames() {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("register collection %s: %v", name, err)
			return err
		}
		if !registered {
			logrus.Warnf("collection %s already registered", name)
		}
	}
	return nil
}
