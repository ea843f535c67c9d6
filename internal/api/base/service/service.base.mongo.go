// Package basesvc implements the generic MongoDB repository every entity
// service embeds.
package basesvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/models"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/common"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/database"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/global"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/logger"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/utility"
)

// BaseServiceMongo is what the generic CRUD handler needs from a service.
type BaseServiceMongo[T any] interface {
	Fetch(ctx context.Context, q basemodels.FetchQuery) (*basemodels.PaginateResult[bson.M], error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (T, error)
	Create(ctx context.Context, data T) (T, error)
	Update(ctx context.Context, id primitive.ObjectID, patch []byte) (T, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// BaseServiceMongoImpl is the default repository for one collection.
// Domain services embed it and shadow the methods whose rules differ.
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection
	entity     string
	spec       basemodels.FetchSpec
}

func NewBaseServiceMongo[T any](collection *mongo.Collection, entity string, spec basemodels.FetchSpec) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{
		collection: collection,
		entity:     entity,
		spec:       spec,
	}
}

// CollectionFromRegistry looks up a collection registered at startup.
func CollectionFromRegistry(name string) (*mongo.Collection, error) {
	coll, ok := global.RegistryCollections.Get(name)
	if !ok || coll == nil {
		return nil, fmt.Errorf("collection %s not registered: %w", name, common.ErrNotFound)
	}
	return coll, nil
}

func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// Entity is the singular name used in not-found messages.
func (s *BaseServiceMongoImpl[T]) Entity() string {
	return s.entity
}

func (s *BaseServiceMongoImpl[T]) notFound() error {
	return common.NotFound(s.entity)
}

// Validate runs the struct validator and converts failures to a 400.
func (s *BaseServiceMongoImpl[T]) Validate(doc T) error {
	if global.Validate == nil {
		global.InitValidator()
	}
	if err := global.Validate.Struct(doc); err != nil {
		return common.FieldErrors(common.ValidationErrorMap(err))
	}
	return nil
}

// InsertOne stores data with fresh timestamps and returns the stored document.
func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	doc, err := utility.ToMap(data)
	if err != nil {
		return zero, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, 400, err)
	}
	utility.StampTimestamps(doc, time.Now().UTC())

	qctx, cancel := database.QueryContext(ctx)
	defer cancel()

	result, err := s.collection.InsertOne(qctx, doc)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, common.MsgDatabaseError, 500, fmt.Errorf("unexpected inserted id %T", result.InsertedID))
	}
	return s.FindOneById(ctx, id)
}

func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var zero T
	if filter == nil {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.FindOne()
	}

	qctx, cancel := database.QueryContext(ctx)
	defer cancel()

	var result T
	if err := s.collection.FindOne(qctx, filter, opts).Decode(&result); err != nil {
		if err == mongo.ErrNoDocuments {
			return zero, s.notFound()
		}
		return zero, common.ConvertMongoError(err)
	}
	return result, nil
}

func (s *BaseServiceMongoImpl[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

// Find returns every match; never a nil slice.
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	if filter == nil {
		filter = bson.D{}
	}

	qctx, cancel := database.QueryContext(ctx)
	defer cancel()

	cursor, err := s.collection.Find(qctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(qctx)

	results := []T{}
	if err := cursor.All(qctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}
	qctx, cancel := database.QueryContext(ctx)
	defer cancel()

	count, err := s.collection.CountDocuments(qctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

func (s *BaseServiceMongoImpl[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := s.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateById applies a raw update document and returns the new version.
func (s *BaseServiceMongoImpl[T]) UpdateById(ctx context.Context, id primitive.ObjectID, update bson.M) (T, error) {
	var zero T

	qctx, cancel := database.QueryContext(ctx)
	defer cancel()

	result, err := s.collection.UpdateOne(qctx, bson.M{"_id": id}, update)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return zero, s.notFound()
	}
	return s.FindOneById(ctx, id)
}

func (s *BaseServiceMongoImpl[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	qctx, cancel := database.QueryContext(ctx)
	defer cancel()

	result, err := s.collection.DeleteOne(qctx, bson.M{"_id": id})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return s.notFound()
	}
	return nil
}

// FindWithPagination is the typed variant of Fetch without lookups.
func (s *BaseServiceMongoImpl[T]) FindWithPagination(ctx context.Context, filter interface{}, q basemodels.FetchQuery) (*basemodels.PaginateResult[T], error) {
	q = q.Normalize()
	if filter == nil {
		filter = bson.D{}
	}

	total, err := s.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(q.Skip()).
		SetLimit(q.Limit)
	items, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return basemodels.NewPaginateResult(items, total, q.Page, q.Limit), nil
}

// Fetch lists one page of the search-filtered collection with references
// expanded. Total ignores paging.
func (s *BaseServiceMongoImpl[T]) Fetch(ctx context.Context, q basemodels.FetchQuery) (*basemodels.PaginateResult[bson.M], error) {
	q = q.Normalize()

	filter, err := BuildFilter(q, s.spec)
	if err != nil {
		return nil, err
	}

	total, err := s.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	qctx, cancel := database.QueryContext(ctx)
	defer cancel()

	cursor, err := s.collection.Aggregate(qctx, BuildFetchPipeline(filter, q, s.spec))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(qctx)

	items := []bson.M{}
	if err := cursor.All(qctx, &items); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"collection": s.collection.Name(),
		"search":     q.Search,
		"page":       q.Page,
		"total":      total,
	}).Debug("fetch")

	return basemodels.NewPaginateResult(items, total, q.Page, q.Limit), nil
}

// Create validates and inserts data.
func (s *BaseServiceMongoImpl[T]) Create(ctx context.Context, data T) (T, error) {
	var zero T
	if err := s.Validate(data); err != nil {
		return zero, err
	}
	return s.InsertOne(ctx, data)
}

// Merge loads id and overlays the JSON patch on a copy of it. Fields
// absent from the patch keep their stored values.
func (s *BaseServiceMongoImpl[T]) Merge(ctx context.Context, id primitive.ObjectID, patch []byte) (existing T, merged T, err error) {
	existing, err = s.FindOneById(ctx, id)
	if err != nil {
		return existing, merged, err
	}

	merged, err = deepCopy(existing)
	if err != nil {
		return existing, merged, err
	}
	if err := utility.DecodeJSON(patch, &merged); err != nil {
		return existing, merged, err
	}
	return existing, merged, nil
}

// Save writes merged over id. _id and created_at are never overwritten.
func (s *BaseServiceMongoImpl[T]) Save(ctx context.Context, id primitive.ObjectID, merged T, exclude ...string) (T, error) {
	var zero T
	set, err := utility.SetFields(merged, append([]string{"_id", "created_at"}, exclude...)...)
	if err != nil {
		return zero, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, 400, err)
	}
	set["updated_at"] = time.Now().UTC()
	return s.UpdateById(ctx, id, bson.M{"$set": set})
}

// Update applies a partial update: merge, re-validate, save.
func (s *BaseServiceMongoImpl[T]) Update(ctx context.Context, id primitive.ObjectID, patch []byte) (T, error) {
	var zero T
	_, merged, err := s.Merge(ctx, id, patch)
	if err != nil {
		return zero, err
	}
	if err := s.Validate(merged); err != nil {
		return zero, err
	}
	return s.Save(ctx, id, merged)
}

func (s *BaseServiceMongoImpl[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteById(ctx, id)
}

func deepCopy[T any](v T) (T, error) {
	var out T
	raw, err := bson.Marshal(v)
	if err != nil {
		return out, common.ConvertMongoError(err)
	}
	if err := bson.Unmarshal(raw, &out); err != nil {
		return out, common.ConvertMongoError(err)
	}
	return out, nil
}
