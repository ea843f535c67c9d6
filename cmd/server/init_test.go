package main

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, splitOrigins("*"))
	assert.Equal(t, []string{"*"}, splitOrigins(""))
	assert.Equal(t, []string{"http://a.test", "https://b.test"}, splitOrigins(" http://a.test, https://b.test ,"))
}

func TestEveryCollectionHasIndexModel(t *testing.T) {
	models := modelIndexes()
	names := collectionNames()
	assert.Len(t, models, len(names))
	for _, name := range names {
		m, ok := models[name]
		if assert.True(t, ok, name) {
			assert.Equal(t, reflect.Struct, reflect.TypeOf(m).Kind(), name)
		}
	}
}
