package memory

import (
	"sync"

	"github.com/eagleeyes/storefront/internal/models"
	"github.com/eagleeyes/storefront/internal/repository"
)

type Collection[T models.Record] struct {
	mu    sync.RWMutex
	items []T
}

func NewCollection[T models.Record](seed []T) *Collection[T] {
	return &Collection[T]{items: append([]T(nil), seed...)}
}

func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.index(id); i >= 0 {
		return c.items[i], nil
	}
	var zero T
	return zero, repository.ErrNotFound
}

func (c *Collection[T]) Exists(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.index(id) >= 0
}

func (c *Collection[T]) Add(rec T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index(rec.RecordID()) >= 0 {
		return repository.ErrDuplicateID
	}
	c.items = append(c.items, rec)
	return nil
}

func (c *Collection[T]) Replace(rec T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.index(rec.RecordID())
	if i < 0 {
		return repository.ErrNotFound
	}
	c.items[i] = rec
	return nil
}

func (c *Collection[T]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.index(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	return nil
}

func (c *Collection[T]) index(id string) int {
	for i, it := range c.items {
		if it.RecordID() == id {
			return i
		}
	}
	return -1
}
