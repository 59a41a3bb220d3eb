// Package http_client provides a configurable HTTP client component and a
// function for making individual HTTP requests.
package http_client

import (
	"github.com/vk/componentgo/internal/registry"
)

// Module implements the registry.Module interface. It's the main entrypoint
// for the http_client module, responsible for registering all of its
// components with the application's registry.
type Module struct{}

// Register registers the client class and the request function.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterClass("net.HTTPClient", &registry.Factory{
		NewInput: newClientInput,
		Fn:       NewHTTPClient,
	})
	r.RegisterFunction("net.Request", &registry.Factory{
		NewInput: func() any { return &RequestInput{Method: "GET", Timeout: "30s"} },
		Fn:       Request,
	})
}
