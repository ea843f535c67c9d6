package database

import (
	"context"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/common"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/logger"
)

var queryTimeout atomic.Int64

func init() {
	queryTimeout.Store(int64(10 * time.Second))
}

// SetQueryTimeout changes the deadline QueryContext applies.
func SetQueryTimeout(d time.Duration) {
	if d > 0 {
		queryTimeout.Store(int64(d))
	}
}

// QueryContext bounds a single store call. Existing shorter deadlines win.
func QueryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, time.Duration(queryTimeout.Load()))
}

// TxRunner runs fn so that every store call made with the ctx it receives
// commits or aborts together.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// MongoTxRunner is the TxRunner backed by a replica-set client.
type MongoTxRunner struct {
	client *mongo.Client
}

func NewTxRunner(client *mongo.Client) *MongoTxRunner {
	return &MongoTxRunner{client: client}
}

// WithSession acquires a session from the client pool and always ends it,
// whatever fn returns.
func WithSession(ctx context.Context, client *mongo.Client, fn func(sc mongo.SessionContext) error) error {
	if client == nil {
		return common.ErrConnection
	}
	session, err := client.StartSession()
	if err != nil {
		return common.ConvertMongoError(err)
	}
	defer session.EndSession(context.Background())

	return mongo.WithSession(ctx, session, fn)
}

func (r *MongoTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	txOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	return WithSession(ctx, r.client, func(sc mongo.SessionContext) error {
		_, err := sc.WithTransaction(sc, func(txCtx mongo.SessionContext) (interface{}, error) {
			return nil, fn(txCtx)
		}, txOpts)
		if err != nil {
			logger.WithContext(ctx).WithError(err).Warn("transaction aborted")
			return common.ConvertMongoError(err)
		}
		return nil
	})
}
