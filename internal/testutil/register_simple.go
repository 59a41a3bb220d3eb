package testutil

import "github.com/vk/componentgo/internal/registry"

// SimpleModule is a test helper for easily creating a mock module that
// registers a single class or function.
type SimpleModule struct {
	ClassName string
	Class     *registry.Factory

	FunctionName string
	Function     *registry.Factory
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	if m.ClassName != "" && m.Class != nil {
		r.RegisterClass(m.ClassName, m.Class)
	}
	if m.FunctionName != "" && m.Function != nil {
		r.RegisterFunction(m.FunctionName, m.Function)
	}
}
