package filecfg

import (
	"github.com/vk/componentgo/internal/config"
)

// document is the on-disk layout shared by the YAML and TOML loaders.
type document struct {
	Namespaces []string       `yaml:"namespaces" toml:"namespaces"`
	Defaults   map[string]any `yaml:"defaults" toml:"defaults"`
	Components []declaration  `yaml:"components" toml:"components"`
	Calls      []declaration  `yaml:"calls" toml:"calls"`
}

type declaration struct {
	Symbol     string         `yaml:"symbol" toml:"symbol"`
	Name       string         `yaml:"name" toml:"name"`
	Strict     bool           `yaml:"strict" toml:"strict"`
	Namespaces []string       `yaml:"namespaces" toml:"namespaces"`
	Arguments  map[string]any `yaml:"arguments" toml:"arguments"`
}

func (d *document) toModel(path string) *config.Model {
	model := config.NewModel()
	model.Namespaces = d.Namespaces
	if d.Defaults != nil {
		model.Defaults = normalizeMap(d.Defaults)
	}
	for _, c := range d.Components {
		model.Declarations = append(model.Declarations, c.toDeclaration(config.KindComponent, path))
	}
	for _, c := range d.Calls {
		model.Declarations = append(model.Declarations, c.toDeclaration(config.KindCall, path))
	}
	return model
}

func (d declaration) toDeclaration(kind config.DeclarationKind, path string) *config.Declaration {
	arguments := make(map[string]any, len(d.Arguments))
	if d.Arguments != nil {
		arguments = normalizeMap(d.Arguments)
	}
	return &config.Declaration{
		Kind:       kind,
		Symbol:     d.Symbol,
		Name:       d.Name,
		Namespaces: d.Namespaces,
		Strict:     d.Strict,
		Arguments:  arguments,
		Source:     path,
	}
}

// normalizeMap rewrites decoder-specific containers into map[string]any and
// []any so every loader hands the same shapes to the binder.
func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalize(v)
	}
	return out
}

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return normalizeMap(t)
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if s, ok := k.(string); ok {
				out[s] = normalize(val)
			}
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeMap(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	default:
		return v
	}
}
