// Package fake provides an in-memory cache.ProductCache for tests.
package fake

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/Alturino/storefront/internal/cache"
	"github.com/Alturino/storefront/product/pkg/response"
)

type ProductCache struct {
	mu    sync.Mutex
	items map[uuid.UUID]response.Product
	calls []string

	Failures map[string]error
}

func NewProductCache() *ProductCache {
	return &ProductCache{items: map[uuid.UUID]response.Product{}, Failures: map[string]error{}}
}

func (f *ProductCache) enter(method string) error {
	f.calls = append(f.calls, method)
	return f.Failures[method]
}

func (f *ProductCache) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

func (f *ProductCache) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

func (f *ProductCache) Get(c context.Context, id uuid.UUID) (response.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("Get"); err != nil {
		return response.Product{}, err
	}
	p, ok := f.items[id]
	if !ok {
		return response.Product{}, cache.ErrCacheMiss
	}
	return p, nil
}

func (f *ProductCache) Set(c context.Context, product response.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("Set"); err != nil {
		return err
	}
	f.items[product.ID] = product
	return nil
}

func (f *ProductCache) Delete(c context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("Delete"); err != nil {
		return err
	}
	delete(f.items, id)
	return nil
}

func (f *ProductCache) Flush(c context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("Flush"); err != nil {
		return err
	}
	f.items = map[uuid.UUID]response.Product{}
	return nil
}

var _ cache.ProductCache = (*ProductCache)(nil)
