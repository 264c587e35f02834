package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"coopledger/pkg/errors"
	"coopledger/pkg/logger"
	"go.uber.org/zap"
)

// FileCollection persists records as a single JSON array on disk, in the
// style of the original data files: the whole array is read on every load
// and rewritten on every mutation. The indent keeps the files readable.
type FileCollection[T Record] struct {
	name string
	path string
	mu   sync.Mutex
	log  *zap.Logger
}

// NewFileCollection opens (or creates) the collection file dir/<name>.json
func NewFileCollection[T Record](dir, name string) (*FileCollection[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.NewStoreFailed(name, "init", err)
	}

	c := &FileCollection[T]{
		name: name,
		path: filepath.Join(dir, name+".json"),
		log:  logger.Named("store"),
	}

	if _, err := os.Stat(c.path); os.IsNotExist(err) {
		if err := os.WriteFile(c.path, []byte("[]"), 0o644); err != nil {
			return nil, errors.NewStoreFailed(name, "init", err)
		}
		c.log.Debug("Created collection file", zap.String("path", c.path))
	} else if err != nil {
		return nil, errors.NewStoreFailed(name, "init", err)
	}

	return c, nil
}

// List returns a snapshot of all records, taken under the collection lock
func (c *FileCollection[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Append adds rec to the end of the collection and rewrites the file
func (c *FileCollection[T]) Append(ctx context.Context, rec T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	recs, err := c.load()
	if err != nil {
		return err
	}
	recs = append(recs, rec)
	return c.save(recs)
}

// Mutate applies fn to the full collection under the lock and persists it
func (c *FileCollection[T]) Mutate(ctx context.Context, fn func(recs []T) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	recs, err := c.load()
	if err != nil {
		return err
	}
	if err := fn(recs); err != nil {
		return err
	}
	return c.save(recs)
}

func (c *FileCollection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, errors.NewStoreFailed(c.name, "load", err)
	}

	var recs []T
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, errors.NewStoreFailed(c.name, "load", fmt.Errorf("corrupt collection file %s: %w", c.path, err))
	}
	return recs, nil
}

func (c *FileCollection[T]) save(recs []T) error {
	if recs == nil {
		recs = []T{}
	}

	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return errors.NewStoreFailed(c.name, "save", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return errors.NewStoreFailed(c.name, "save", err)
	}
	return nil
}
