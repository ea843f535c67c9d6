// Package registry holds named singletons (MongoDB collections, mostly)
// behind a read-write mutex.
package registry

import (
	"fmt"
	"sync"

	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/common"
)

// Registry is a concurrency-safe name -> T map.
type Registry[T any] struct {
	items map[string]T
	mu    sync.RWMutex
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register stores item under name, replacing any previous entry.
// isNew is false when an entry was overwritten.
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, common.FieldError("name", "name is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// MustGet returns the entry or an error wrapping common.ErrNotFound.
func (r *Registry[T]) MustGet(name string) (T, error) {
	item, ok := r.Get(name)
	if !ok {
		return item, fmt.Errorf("registry entry %q: %w", name, common.ErrNotFound)
	}
	return item, nil
}

// GetOrCreate returns the entry, building it with creator when absent.
// creator runs under the write lock.
func (r *Registry[T]) GetOrCreate(name string, creator func() (T, error)) (item T, err error) {
	if name == "" {
		return item, common.FieldError("name", "name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.items[name]; ok {
		return existing, nil
	}

	created, err := creator()
	if err != nil {
		return item, fmt.Errorf("create %s: %w", name, err)
	}
	r.items[name] = created
	return created, nil
}

// Names lists registered names in no particular order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	return names
}

// Clear removes name, running cleanup on the item first when given.
func (r *Registry[T]) Clear(name string, cleanup func(T) error) (deleted bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[name]
	if !ok {
		return false, nil
	}
	if cleanup != nil {
		if err := cleanup(item); err != nil {
			return false, fmt.Errorf("cleanup %s: %w", name, err)
		}
	}
	delete(r.items, name)
	return true, nil
}

// ClearAll empties the registry and reports how many entries it held.
func (r *Registry[T]) ClearAll() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := len(r.items)
	r.items = make(map[string]T)
	return count
}
