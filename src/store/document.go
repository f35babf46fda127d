// Package store implements the flat-file persistence layer: one JSON
// document per collection plus a blob directory for uploaded files. The
// documents are the canonical on-disk state; no other component writes them.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned when a record, slug or document is absent.
var ErrNotFound = errors.New("record not found")

// Document wraps one collection's JSON file. Every operation takes the
// document lock, so concurrent mutations serialize and readers observe
// either the pre- or post-mutation state, never a partial write.
type Document[T any] struct {
	path string
	seed func() T
	mu   sync.Mutex
}

// NewDocument creates a handle for the JSON document at path. When the file
// is missing, the first access writes and returns seed().
func NewDocument[T any](path string, seed func() T) *Document[T] {
	return &Document[T]{path: path, seed: seed}
}

// Exists reports whether the backing file is present, without seeding it.
func (d *Document[T]) Exists() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, err := os.Stat(d.path)
	return err == nil
}

// Load returns the current document, seeding the file with defaults when it
// does not exist yet.
func (d *Document[T]) Load() (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.load()
}

// Update applies fn to the current document and persists the result. The
// whole read-modify-write cycle runs under the document lock. When fn
// returns an error nothing is written and the prior document stays intact.
func (d *Document[T]) Update(fn func(T) (T, error)) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var zero T
	doc, err := d.load()
	if err != nil {
		return zero, err
	}

	next, err := fn(doc)
	if err != nil {
		return zero, err
	}

	if err := d.save(next); err != nil {
		return zero, err
	}
	return next, nil
}

// Replace overwrites the document wholesale.
func (d *Document[T]) Replace(doc T) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.save(doc)
}

func (d *Document[T]) load() (T, error) {
	var doc T

	data, err := os.ReadFile(d.path)
	if errors.Is(err, os.ErrNotExist) {
		doc = d.seed()
		if err := d.save(doc); err != nil {
			return doc, err
		}
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("error reading %s: %w", d.path, err)
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("error decoding %s: %w", d.path, err)
	}
	return doc, nil
}

// save writes the document to a temp file in the same directory and renames
// it into place, so a crash mid-write never truncates the collection.
func (d *Document[T]) save(doc T) error {
	if err := os.MkdirAll(filepath.Dir(d.path), 0755); err != nil {
		return fmt.Errorf("error creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", d.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(d.path), filepath.Base(d.path)+".tmp-")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("error writing %s: %w", d.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error writing %s: %w", d.path, err)
	}

	if err := os.Rename(tmp.Name(), d.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error committing %s: %w", d.path, err)
	}
	return nil
}
