package env_vars

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vk/componentgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments of the os.Env function.
type Input struct {
	Include     []string          `arg:"include,optional"`
	Required    []string          `arg:"required,optional"`
	Defaults    map[string]string `arg:"defaults,optional"`
	Prefix      string            `arg:"prefix,optional"`
	StripPrefix bool              `arg:"strip_prefix,optional"`
}

// Env collects environment variables. Keys named in include, required or
// defaults are looked up explicitly; otherwise every variable matching prefix
// is returned.
func Env(ctx context.Context, input *Input) (map[string]string, error) {
	candidateKeys := make(map[string]struct{})

	for _, key := range input.Include {
		candidateKeys[key] = struct{}{}
	}
	for key := range input.Defaults {
		candidateKeys[key] = struct{}{}
	}
	for _, key := range input.Required {
		candidateKeys[key] = struct{}{}
	}

	if len(candidateKeys) == 0 {
		for _, e := range os.Environ() {
			key := strings.SplitN(e, "=", 2)[0]
			if strings.HasPrefix(key, input.Prefix) {
				candidateKeys[key] = struct{}{}
			}
		}
	}

	for _, reqKey := range input.Required {
		_, inEnv := os.LookupEnv(reqKey)
		_, inDefaults := input.Defaults[reqKey]
		if !inEnv && !inDefaults {
			return nil, fmt.Errorf("required environment variable '%s' is not set and has no default", reqKey)
		}
	}

	results := make(map[string]string)
	for key := range candidateKeys {
		value, found := os.LookupEnv(key)
		if !found {
			value, found = input.Defaults[key]
		}
		if !found {
			continue
		}

		resultKey := key
		if input.StripPrefix && input.Prefix != "" {
			resultKey = strings.TrimPrefix(key, input.Prefix)
		}
		results[resultKey] = value
	}

	return results, nil
}

// Register registers the function with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFunction("os.Env", &registry.Factory{
		NewInput: func() any { return new(Input) },
		Fn:       Env,
	})
}
