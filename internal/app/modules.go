package app

import (
	"io"

	"github.com/vk/componentgo/internal/config"
	"github.com/vk/componentgo/internal/filecfg"
	"github.com/vk/componentgo/internal/hcl"
	"github.com/vk/componentgo/internal/registry"
	"github.com/vk/componentgo/modules/env_vars"
	"github.com/vk/componentgo/modules/http_client"
	"github.com/vk/componentgo/modules/print"
	"github.com/vk/componentgo/modules/socketio_client"
	"github.com/vk/componentgo/modules/text"
)

// coreModules is the definitive list of all modules that are compiled into
// the componentgo binary.
func coreModules(outW io.Writer) []registry.Module {
	return []registry.Module{
		&env_vars.Module{},
		&print.Module{Out: outW},
		&http_client.Module{},
		&socketio_client.Module{},
		&text.Module{},
	}
}

// DefaultLoader reads HCL, YAML and TOML declaration files.
func DefaultLoader() config.Loader {
	return config.NewMultiLoader(hcl.NewLoader(), filecfg.NewYAMLLoader(), filecfg.NewTOMLLoader())
}
