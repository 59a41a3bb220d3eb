package config

import (
	"context"
)

// Loader is the interface for loading declarations from a set of paths.
type Loader interface {
	// Load reads every declaration file found under paths and merges them
	// into a single model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// FileLoader is the interface for a format-specific loader of one file.
type FileLoader interface {
	// Extensions lists the file extensions handled, including the dot.
	Extensions() []string
	// LoadFile parses a single file into a model.
	LoadFile(ctx context.Context, path string) (*Model, error)
}
