package registry

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/vk/componentgo/internal/bind"
	"github.com/zclconf/go-cty/cty"
)

// argTag is the struct tag naming a parameter, e.g. `arg:"num_layers,optional"`.
const argTag = "arg"

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// Param describes one declared parameter of a symbol.
type Param struct {
	Name     string
	Field    string
	Type     reflect.Type
	CtyType  cty.Type // cty.DynamicPseudoType when the Go type has no cty equivalent
	Optional bool

	index []int
}

// Symbol is a resolved class or function together with its declared parameters.
type Symbol struct {
	Name      string
	Namespace string
	Kind      Kind
	Params    []*Param

	byName  map[string]*Param
	factory *Factory
}

// QualifiedName returns "namespace.Name", or just the name for global symbols.
func (s *Symbol) QualifiedName() string {
	if s.Namespace == "" {
		return s.Name
	}
	return s.Namespace + "." + s.Name
}

func (s *Symbol) String() string {
	return s.Kind.String() + " " + s.QualifiedName()
}

// Param returns the parameter with the given name.
func (s *Symbol) Param(name string) (*Param, bool) {
	p, ok := s.byName[name]
	return p, ok
}

// ParamNames returns the parameter names in declaration order.
func (s *Symbol) ParamNames() []string {
	names := make([]string, len(s.Params))
	for i, p := range s.Params {
		names[i] = p.Name
	}
	return names
}

func splitQualifiedName(qualifiedName string) (namespace, name string) {
	i := strings.LastIndex(qualifiedName, ".")
	if i < 0 {
		return "", qualifiedName
	}
	return qualifiedName[:i], qualifiedName[i+1:]
}

func newSymbol(qualifiedName string, kind Kind, f *Factory) (*Symbol, error) {
	namespace, name := splitQualifiedName(qualifiedName)
	if name == "" || strings.HasPrefix(qualifiedName, ".") || strings.Contains(qualifiedName, "..") {
		return nil, errors.New("malformed qualified name")
	}
	if f == nil || f.NewInput == nil || f.Fn == nil {
		return nil, errors.New("factory must provide NewInput and Fn")
	}

	proto := reflect.ValueOf(f.NewInput())
	if proto.Kind() != reflect.Pointer || proto.IsNil() || proto.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("NewInput must return a non-nil pointer to a struct, got %s", describe(proto))
	}
	if err := checkSignature(reflect.TypeOf(f.Fn), proto.Type()); err != nil {
		return nil, err
	}

	params, err := buildParams(proto.Elem().Type())
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*Param, len(params))
	for _, p := range params {
		byName[p.Name] = p
	}

	return &Symbol{
		Name:      name,
		Namespace: namespace,
		Kind:      kind,
		Params:    params,
		byName:    byName,
		factory:   f,
	}, nil
}

func describe(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Type().String()
}

func checkSignature(fnType, inputType reflect.Type) error {
	if fnType.Kind() != reflect.Func {
		return fmt.Errorf("factory function must be a func, got %s", fnType)
	}
	if fnType.NumIn() != 2 || fnType.In(0) != contextType || fnType.In(1) != inputType {
		return fmt.Errorf("factory function must accept (context.Context, %s), got %s", inputType, fnType)
	}
	if fnType.NumOut() != 2 || fnType.Out(1) != errorType {
		return fmt.Errorf("factory function must return (T, error), got %s", fnType)
	}
	return nil
}

// buildParams reads the `arg` tags of the prototype's fields.
func buildParams(structType reflect.Type) ([]*Param, error) {
	var params []*Param
	seen := make(map[string]struct{})

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		tag, ok := field.Tag.Lookup(argTag)
		if !ok {
			continue
		}
		parts := strings.Split(tag, ",")
		name := parts[0]
		if name == "" || name == "-" {
			continue
		}
		if !field.IsExported() {
			return nil, fmt.Errorf("parameter '%s' is bound to unexported field %s", name, field.Name)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("parameter '%s' is declared more than once", name)
		}
		seen[name] = struct{}{}

		ctyType, err := bind.ImpliedType(field.Type)
		if err != nil {
			ctyType = cty.DynamicPseudoType
		}

		params = append(params, &Param{
			Name:     name,
			Field:    field.Name,
			Type:     field.Type,
			CtyType:  ctyType,
			Optional: slices.Contains(parts[1:], "optional"),
			index:    field.Index,
		})
	}
	return params, nil
}
