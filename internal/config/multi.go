package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vk/componentgo/internal/ctxlog"
	"github.com/vk/componentgo/internal/fsutil"
)

// MultiLoader implements Loader by dispatching every discovered file to the
// FileLoader registered for its extension.
type MultiLoader struct {
	byExt map[string]FileLoader
	exts  []string
}

// NewMultiLoader creates a loader over the given file loaders. It panics if two
// loaders claim the same extension.
func NewMultiLoader(loaders ...FileLoader) *MultiLoader {
	m := &MultiLoader{byExt: make(map[string]FileLoader)}
	for _, l := range loaders {
		for _, ext := range l.Extensions() {
			ext = strings.ToLower(ext)
			if _, exists := m.byExt[ext]; exists {
				panic(fmt.Sprintf("extension '%s' already has a loader", ext))
			}
			m.byExt[ext] = l
			m.exts = append(m.exts, ext)
		}
	}
	return m
}

// Load walks paths, which may be files or directories, and merges every file
// with a known extension. Files are processed in lexical order and missing
// paths are skipped.
func (m *MultiLoader) Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Declaration loader started.", "path_count", len(paths), "extensions", m.exts)

	files, err := m.findFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered declaration files.", "count", len(files))

	model := NewModel()
	for _, file := range files {
		loader := m.byExt[strings.ToLower(filepath.Ext(file))]
		fileModel, err := loader.LoadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		for _, d := range fileModel.Declarations {
			if d.Source == "" {
				d.Source = file
			}
			if err := d.Validate(); err != nil {
				return nil, err
			}
		}
		model.Merge(fileModel)
	}

	logger.Debug("Declaration loading complete.", "files", len(files), "declarations", len(model.Declarations), "namespaces", model.Namespaces)
	return model, nil
}

func (m *MultiLoader) findFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		var found []string
		if info.IsDir() {
			found, err = fsutil.FindFilesByExtension(path, m.exts...)
			if err != nil {
				return nil, err
			}
		} else if fsutil.HasExtension(path, m.exts...) {
			found = []string{path}
		} else {
			return nil, fmt.Errorf("no loader for file %s", path)
		}

		for _, f := range found {
			if _, wasSeen := seen[f]; !wasSeen {
				allFiles = append(allFiles, f)
				seen[f] = struct{}{}
			}
		}
	}
	slices.Sort(allFiles)
	return allFiles, nil
}
