package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/models"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/common"
)

var employeeSpec = basemodels.FetchSpec{
	SearchFields: []string{"first_name", "last_name"},
	Lookups:      []basemodels.Lookup{{Field: "role_id", From: "roles"}},
}

var billItemSpec = basemodels.FetchSpec{
	Lookups: []basemodels.Lookup{
		{Field: "bill_id", From: "bills"},
		{Field: "product_id", From: "products"},
	},
	IDFilters: map[string]string{"bill_id": "bill_id"},
}

func TestBuildFilterSearchesDesignatedFields(t *testing.T) {
	filter, err := BuildFilter(basemodels.FetchQuery{Search: " smi "}, employeeSpec)
	require.NoError(t, err)

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	assert.Equal(t, bson.M{"first_name": bson.M{"$regex": "smi", "$options": "i"}}, or[0])
	assert.Equal(t, bson.M{"last_name": bson.M{"$regex": "smi", "$options": "i"}}, or[1])
}

func TestBuildFilterIDParams(t *testing.T) {
	billID := primitive.NewObjectID()

	filter, err := BuildFilter(basemodels.FetchQuery{Params: map[string]string{"bill_id": billID.Hex(), "other": "x"}}, billItemSpec)
	require.NoError(t, err)
	assert.Equal(t, bson.M{"bill_id": billID}, filter)

	_, err = BuildFilter(basemodels.FetchQuery{Params: map[string]string{"bill_id": "nope"}}, billItemSpec)
	assert.ErrorIs(t, err, common.ErrInvalidID)
}

func TestBuildFetchPipelinePagesBeforeLookup(t *testing.T) {
	pipeline := BuildFetchPipeline(bson.M{}, basemodels.FetchQuery{Page: 2, Limit: 10}, employeeSpec)

	require.Len(t, pipeline, 7)
	assert.Equal(t, "$match", pipeline[0][0].Key)
	assert.Equal(t, "$sort", pipeline[1][0].Key)
	assert.Equal(t, bson.E{Key: "$skip", Value: int64(10)}, pipeline[2][0])
	assert.Equal(t, bson.E{Key: "$limit", Value: int64(10)}, pipeline[3][0])
	assert.Equal(t, "$lookup", pipeline[4][0].Key)
	assert.Equal(t, "$unwind", pipeline[5][0].Key)
	assert.Equal(t, "$set", pipeline[6][0].Key)
}

func TestLookupStagesMany(t *testing.T) {
	stages := LookupStages([]basemodels.Lookup{{Field: "products", From: "bill_items", Many: true}})
	require.Len(t, stages, 3)

	lookup := stages[0][0].Value.(bson.M)
	assert.Equal(t, "bill_items", lookup["from"])
	assert.Equal(t, "products", lookup["localField"])
	assert.Equal(t, "_products", lookup["as"])

	require.Equal(t, "$set", stages[1][0].Key)
	kept := stages[1][0].Value.(bson.M)["products"].(bson.M)["$filter"].(bson.M)
	ordered := kept["input"].(bson.M)["$map"].(bson.M)
	assert.Equal(t, bson.M{"$ifNull": bson.A{"$products", bson.A{}}}, ordered["input"])
	assert.Equal(t, bson.M{"$ne": bson.A{"$$d", nil}}, kept["cond"])

	assert.Equal(t, bson.D{{Key: "$unset", Value: "_products"}}, stages[2])
}

func TestOptionalRef(t *testing.T) {
	assert.True(t, OptionalRef(nil).IsZero())
	id := primitive.NewObjectID()
	assert.Equal(t, id, OptionalRef(&id))
}
