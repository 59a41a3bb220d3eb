package config

import (
	"fmt"
	"slices"

	"github.com/vk/componentgo/internal/args"
)

// DeclarationKind tells component declarations apart from function calls.
type DeclarationKind int

const (
	// KindComponent constructs a registered class.
	KindComponent DeclarationKind = iota
	// KindCall invokes a registered function.
	KindCall
)

func (k DeclarationKind) String() string {
	switch k {
	case KindComponent:
		return "component"
	case KindCall:
		return "call"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Model is the unified, format-agnostic representation of every declaration
// file the application was pointed at.
type Model struct {
	// Namespaces are searched, in order, after a declaration's own namespaces.
	Namespaces []string
	// Defaults are patched into the arguments of every declaration.
	Defaults     map[string]any
	Declarations []*Declaration
}

// NewModel returns an empty model ready to be merged into.
func NewModel() *Model {
	return &Model{Defaults: make(map[string]any)}
}

// Declaration is the format-agnostic representation of a `component` or
// `call` entry.
type Declaration struct {
	Kind       DeclarationKind
	Symbol     string
	Name       string
	Namespaces []string
	Strict     bool
	Arguments  map[string]any
	// Source is the file the declaration was read from.
	Source string
}

// Validate reports declarations that cannot be run.
func (d *Declaration) Validate() error {
	if d.Symbol == "" {
		return fmt.Errorf("%s declaration in %s has no symbol", d.Kind, d.Source)
	}
	return nil
}

// Merge folds other into m. Namespaces are appended without duplicates,
// defaults already present in m win over those in other, and declarations are
// appended in order.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	for _, ns := range other.Namespaces {
		if !slices.Contains(m.Namespaces, ns) {
			m.Namespaces = append(m.Namespaces, ns)
		}
	}
	m.Defaults = args.Patch(m.Defaults, other.Defaults)
	m.Declarations = append(m.Declarations, other.Declarations...)
}
