package filecfg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/componentgo/internal/config"
	"github.com/vk/componentgo/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// YAMLLoader loads `.yaml` and `.yml` declaration files.
type YAMLLoader struct{}

// NewYAMLLoader creates a new YAML declaration loader.
func NewYAMLLoader() *YAMLLoader {
	return &YAMLLoader{}
}

// Extensions implements config.FileLoader.
func (l *YAMLLoader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// LoadFile implements config.FileLoader.
func (l *YAMLLoader) LoadFile(ctx context.Context, path string) (*config.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
	}
	return l.LoadBytes(ctx, data, path)
}

// LoadBytes decodes YAML source held in memory. Unknown keys are rejected.
func (l *YAMLLoader) LoadBytes(ctx context.Context, data []byte, path string) (*config.Model, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	model := doc.toModel(path)
	ctxlog.FromContext(ctx).Debug("Decoded YAML file.", "file", path, "declarations", len(model.Declarations))
	return model, nil
}
