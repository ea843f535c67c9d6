package basesvc

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/models"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/common"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/database"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/utility"
)

// BuildFilter turns the search term and the id query parameters declared
// in spec into a MongoDB filter.
func BuildFilter(q basemodels.FetchQuery, spec basemodels.FetchSpec) (bson.M, error) {
	filter := utility.SearchFilter(strings.TrimSpace(q.Search), spec.SearchFields...)

	for param, field := range spec.IDFilters {
		raw, ok := q.Params[param]
		if !ok || raw == "" {
			continue
		}
		id, valid := utility.String2ObjectID(raw)
		if !valid {
			return nil, common.InvalidID(param)
		}
		filter[field] = id
	}
	return filter, nil
}

// LookupStages expands references the way a populate would: single
// references become the document (or null), arrays become documents.
func LookupStages(lookups []basemodels.Lookup) mongo.Pipeline {
	var stages mongo.Pipeline
	for _, l := range lookups {
		if l.Many {
			stages = append(stages, manyLookupStages(l)...)
			continue
		}
		stages = append(stages, bson.D{{Key: "$lookup", Value: bson.M{
			"from":         l.From,
			"localField":   l.Field,
			"foreignField": "_id",
			"as":           l.Field,
		}}})
		stages = append(stages,
			bson.D{{Key: "$unwind", Value: bson.M{
				"path":                       "$" + l.Field,
				"preserveNullAndEmptyArrays": true,
			}}},
			bson.D{{Key: "$set", Value: bson.M{
				l.Field: bson.M{"$ifNull": bson.A{"$" + l.Field, nil}},
			}}},
		)
	}
	return stages
}

// BuildFetchPipeline pages first and joins afterwards so lookups only run
// for the returned page.
func BuildFetchPipeline(filter bson.M, q basemodels.FetchQuery, spec basemodels.FetchSpec) mongo.Pipeline {
	q = q.Normalize()
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$skip", Value: q.Skip()}},
		{{Key: "$limit", Value: q.Limit}},
	}
	return append(pipeline, LookupStages(spec.Lookups)...)
}

// Ref is a reference to validate before a write.
type Ref struct {
	Field      string
	Collection string
	ID         primitive.ObjectID
}

// CheckRefs fails with a 400 naming every field whose id does not exist.
// Zero ids are skipped; required-ness is the validator's job.
func CheckRefs(ctx context.Context, refs ...Ref) error {
	missing := map[string]string{}
	for _, ref := range refs {
		if ref.ID.IsZero() {
			continue
		}
		coll, err := CollectionFromRegistry(ref.Collection)
		if err != nil {
			return err
		}

		qctx, cancel := database.QueryContext(ctx)
		count, err := coll.CountDocuments(qctx, bson.M{"_id": ref.ID})
		cancel()
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count == 0 {
			missing[ref.Field] = fmt.Sprintf("%s references a missing document", ref.Field)
		}
	}
	if len(missing) > 0 {
		return common.FieldErrors(missing)
	}
	return nil
}

// OptionalRef dereferences a nullable id for CheckRefs.
func OptionalRef(id *primitive.ObjectID) primitive.ObjectID {
	if id == nil {
		return primitive.NilObjectID
	}
	return *id
}

// manyLookupStages joins an id array while keeping the array's order.
// $lookup returns matches in collection order, so the joined documents are
// mapped back onto the ids and ids with no match are dropped.
func manyLookupStages(l basemodels.Lookup) []bson.D {
	joined := "_" + l.Field
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         l.From,
			"localField":   l.Field,
			"foreignField": "_id",
			"as":           joined,
		}}},
		{{Key: "$set", Value: bson.M{
			l.Field: bson.M{"$filter": bson.M{
				"input": bson.M{"$map": bson.M{
					"input": bson.M{"$ifNull": bson.A{"$" + l.Field, bson.A{}}},
					"as":    "id",
					"in": bson.M{"$arrayElemAt": bson.A{
						bson.M{"$filter": bson.M{
							"input": "$" + joined,
							"as":    "d",
							"cond":  bson.M{"$eq": bson.A{"$$d._id", "$$id"}},
						}},
						0,
					}},
				}},
				"as":   "d",
				"cond": bson.M{"$ne": bson.A{"$$d", nil}},
			}},
		}}},
		{{Key: "$unset", Value: joined}},
	}
}
