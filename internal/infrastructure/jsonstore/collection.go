package jsonstore

import (
	"context"
	"errors"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Collection stores a list of records as a single JSON array file.
// A missing file is not an error: the seed dataset is materialized,
// written out best-effort, and returned.
type Collection[T any] struct {
	path    string
	relaxed bool
	seed    func() []T
	log     zerolog.Logger

	mu sync.Mutex
}

// NewCollection creates a Collection backed by <dir>/<name>.json.
// seed may be nil, in which case a missing file yields an empty list.
func NewCollection[T any](opts Options, name string, seed func() []T) *Collection[T] {
	return &Collection[T]{
		path:    opts.Dir + "/" + name + ".json",
		relaxed: opts.RelaxedWrites,
		seed:    seed,
		log:     opts.Logger,
	}
}

// load reads the file, seeding defaults when it does not exist yet.
// Callers must hold c.mu.
func (c *Collection[T]) load() ([]T, error) {
	var items []T
	err := readFile(c.path, &items)
	if err == nil {
		return items, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if c.seed != nil {
		items = c.seed()
	}
	// First touch: persist the defaults so later reads see the same data.
	if err := writeBack(c.path, items, c.relaxed, c.log); err != nil {
		return nil, err
	}
	return items, nil
}

// All returns every record in file order.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Mutate runs fn over the decoded list and writes the result back. The
// whole read-modify-write cycle holds the store lock, so concurrent
// requests against the same resource cannot lose updates. fn returning an
// error aborts the cycle without touching the file.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	return writeBack(c.path, next, c.relaxed, c.log)
}
