package raster

import (
	"context"
	"fmt"
	"os"
)

// MemoryLoader serves grids from a map keyed by path. Tests and dry runs use
// it in place of a file-backed loader.
type MemoryLoader map[string]*Grid

// Load returns the grid registered under path.
func (m MemoryLoader) Load(_ context.Context, path string) (*Grid, error) {
	g, ok := m[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, os.ErrNotExist)
	}
	return g, nil
}
