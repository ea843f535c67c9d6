// Package dbtest opens a throwaway database for tests that need a real
// MongoDB. Set MONGODB_TEST_URI (e.g. mongodb://localhost:27017) to run them.
package dbtest

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const URIEnv = "MONGODB_TEST_URI"

// Open connects to MONGODB_TEST_URI and returns a uniquely named database
// that is dropped when the test ends. The test is skipped when the
// variable is unset.
func Open(t testing.TB) *mongo.Database {
	t.Helper()
	uri := os.Getenv(URIEnv)
	if uri == "" {
		t.Skipf("%s not set", URIEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true}))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	db := client.Database(fmt.Sprintf("supermarket_test_%s", uuid.NewString()[:8]))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return db
}

// Insert writes docs into coll and fails the test on error.
func Insert(t testing.TB, coll *mongo.Collection, docs ...interface{}) {
	t.Helper()
	_, err := coll.InsertMany(context.Background(), docs)
	require.NoError(t, err)
}
