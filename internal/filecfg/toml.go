package filecfg

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vk/componentgo/internal/config"
	"github.com/vk/componentgo/internal/ctxlog"
)

// TOMLLoader loads `.toml` declaration files. Components and calls are written
// as arrays of tables:
//
//	[[components]]
//	symbol = "Printer"
type TOMLLoader struct{}

// NewTOMLLoader creates a new TOML declaration loader.
func NewTOMLLoader() *TOMLLoader {
	return &TOMLLoader{}
}

// Extensions implements config.FileLoader.
func (l *TOMLLoader) Extensions() []string {
	return []string{".toml"}
}

// LoadFile implements config.FileLoader.
func (l *TOMLLoader) LoadFile(ctx context.Context, path string) (*config.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read TOML file %s: %w", path, err)
	}
	return l.LoadBytes(ctx, data, path)
}

// LoadBytes decodes TOML source held in memory. Unknown keys are rejected.
func (l *TOMLLoader) LoadBytes(ctx context.Context, data []byte, path string) (*config.Model, error) {
	var doc document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode TOML file %s: %w", path, err)
	}
	var unknown []string
	for _, k := range md.Undecoded() {
		if !isFreeForm(k) {
			unknown = append(unknown, k.String())
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown keys in TOML file %s: %s", path, strings.Join(unknown, ", "))
	}

	model := doc.toModel(path)
	ctxlog.FromContext(ctx).Debug("Decoded TOML file.", "file", path, "declarations", len(model.Declarations))
	return model, nil
}

// isFreeForm reports whether k lies inside a defaults or arguments table,
// whose keys are not part of the document schema.
func isFreeForm(k toml.Key) bool {
	return len(k) > 0 && k[0] == "defaults" || len(k) > 1 && k[1] == "arguments"
}
