package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/common"
)

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("bills", 1)
	require.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = r.Register("bills", 2)
	require.NoError(t, err)
	assert.False(t, isNew)

	v, ok := r.Get("bills")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, err = r.Register("", 3)
	assert.Error(t, err)
}

func TestMustGetMissing(t *testing.T) {
	r := NewRegistry[string]()
	_, err := r.MustGet("products")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetOrCreateRunsCreatorOnce(t *testing.T) {
	r := NewRegistry[int]()
	calls := 0
	creator := func() (int, error) {
		calls++
		return 7, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := r.GetOrCreate("customers", creator)
			assert.NoError(t, err)
			assert.Equal(t, 7, v)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, calls)

	_, err := r.GetOrCreate("broken", func() (int, error) { return 0, errors.New("nope") })
	assert.Error(t, err)
	_, ok := r.Get("broken")
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	r := NewRegistry[string]()
	_, _ = r.Register("a", "x")
	_, _ = r.Register("b", "y")

	cleaned := ""
	deleted, err := r.Clear("a", func(s string) error {
		cleaned = s
		return nil
	})
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, "x", cleaned)

	deleted, err = r.Clear("missing", nil)
	assert.NoError(t, err)
	assert.False(t, deleted)

	assert.Equal(t, []string{"b"}, r.Names())
	assert.Equal(t, 1, r.ClearAll())
	assert.Empty(t, r.Names())
}
