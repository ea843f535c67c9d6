package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/config"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/logger"
)

// GetInstance connects the process-wide client. The driver keeps a
// connection pool bounded by MONGODB_MIN/MAX_POOL_SIZE; handlers share it.
func GetInstance(c *config.Configuration) (*mongo.Client, error) {
	uri := c.MongoURI()
	if uri == "" || uri == "mongodb://" {
		return nil, fmt.Errorf("database connection URI is empty")
	}

	clientOptions := options.Client().ApplyURI(uri).
		SetMaxPoolSize(c.MongoDB_MaxPoolSize).
		SetMinPoolSize(c.MongoDB_MinPoolSize).
		SetConnectTimeout(5 * time.Second).
		SetSocketTimeout(10 * time.Second).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}

	ctxPing, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelPing()

	if err := client.Ping(ctxPing, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	if c.MongoDB_QueryTimeout > 0 {
		SetQueryTimeout(time.Duration(c.MongoDB_QueryTimeout) * time.Second)
	}

	logger.GetDBLogger().WithField("database", c.DBName()).Info("connected to MongoDB")
	return client, nil
}

// CloseInstance disconnects the client and drains the pool.
func CloseInstance(ctx context.Context, client *mongo.Client) error {
	if client == nil {
		return nil
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.GetDBLogger().WithError(err).Error("disconnect MongoDB client")
		return err
	}
	logger.GetDBLogger().Info("disconnected from MongoDB")
	return nil
}

// Ping checks the server is reachable within two seconds.
func Ping(ctx context.Context, client *mongo.Client) error {
	if client == nil {
		return fmt.Errorf("database client not initialised")
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return client.Ping(ctx, nil)
}
