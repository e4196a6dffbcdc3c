package jsonstore

import (
	"context"
	"errors"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Document stores a single JSON object file (company settings, site
// content). Semantics mirror Collection: missing file seeds defaults,
// mutations are serialized and written back atomically.
type Document[T any] struct {
	path    string
	relaxed bool
	seed    func() T
	log     zerolog.Logger

	mu sync.Mutex
}

// NewDocument creates a Document backed by <dir>/<name>.json.
func NewDocument[T any](opts Options, name string, seed func() T) *Document[T] {
	return &Document[T]{
		path:    opts.Dir + "/" + name + ".json",
		relaxed: opts.RelaxedWrites,
		seed:    seed,
		log:     opts.Logger,
	}
}

func (d *Document[T]) load() (T, error) {
	var doc T
	err := readFile(d.path, &doc)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return doc, err
	}
	doc = d.seed()
	if err := writeBack(d.path, doc, d.relaxed, d.log); err != nil {
		return doc, err
	}
	return doc, nil
}

// Get returns the current document.
func (d *Document[T]) Get(ctx context.Context) (T, error) {
	var zero T
	if err := ctxErr(ctx); err != nil {
		return zero, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.load()
}

// Mutate applies fn to the document and writes it back, returning the
// updated value.
func (d *Document[T]) Mutate(ctx context.Context, fn func(*T)) (T, error) {
	var zero T
	if err := ctxErr(ctx); err != nil {
		return zero, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	doc, err := d.load()
	if err != nil {
		return zero, err
	}
	fn(&doc)
	if err := writeBack(d.path, doc, d.relaxed, d.log); err != nil {
		return zero, err
	}
	return doc, nil
}
