package registry

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/gobwas/glob"
	"github.com/vk/componentgo/internal/ctxlog"
)

// Module is the interface that all component packages must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Kind tells classes (constructors) apart from plain functions.
type Kind int

const (
	KindClass Kind = iota
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindFunction:
		return "function"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Registry holds all registered symbols for a single application instance.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	symbols map[string]*Symbol
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		symbols: make(map[string]*Symbol),
	}
}

// Factory holds the compiled Go parts of a registrable symbol.
//
// NewInput returns a pointer to a fresh input struct whose fields already hold
// the defaults of optional parameters. Fn must have the signature
// func(context.Context, *In) (Out, error), where *In is NewInput's type.
type Factory struct {
	NewInput func() any
	Fn       any
}

// RegisterClass registers a constructor under a qualified name such as
// "text.Vocab". A name without dots lives in the global namespace.
func (r *Registry) RegisterClass(qualifiedName string, f *Factory) {
	r.register(qualifiedName, KindClass, f)
}

// RegisterFunction registers a plain function under a qualified name.
func (r *Registry) RegisterFunction(qualifiedName string, f *Factory) {
	r.register(qualifiedName, KindFunction, f)
}

func (r *Registry) register(qualifiedName string, kind Kind, f *Factory) {
	sym, err := newSymbol(qualifiedName, kind, f)
	if err != nil {
		panic(fmt.Sprintf("invalid %s '%s': %v", kind, qualifiedName, err))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, exists := r.symbols[qualifiedName]; exists {
		panic(fmt.Sprintf("%s with name '%s' already registered as a %s", kind, qualifiedName, existing.Kind))
	}
	slog.Debug("Registering symbol.", "kind", kind.String(), "name", qualifiedName, "params", sym.ParamNames())
	r.symbols[qualifiedName] = sym
}

// Len reports the number of registered symbols.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.symbols)
}

// Symbols returns the registered symbols whose qualified name matches the glob
// pattern, sorted by qualified name. Dots separate glob segments, so "text.*"
// matches the direct members of "text" and "**" matches everything. An empty
// pattern matches everything.
func (r *Registry) Symbols(pattern string) ([]*Symbol, error) {
	if pattern == "" {
		pattern = "**"
	}
	g, err := glob.Compile(pattern, '.')
	if err != nil {
		return nil, fmt.Errorf("invalid symbol pattern %q: %w", pattern, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Symbol
	for _, name := range slices.Sorted(maps.Keys(r.symbols)) {
		if g.Match(name) {
			out = append(out, r.symbols[name])
		}
	}
	return out, nil
}

// Resolve locates a class. The symbol is first looked up as given, either
// fully qualified or in the global namespace. Failing that, each namespace is
// tried in order as a prefix and the first match is returned.
func (r *Registry) Resolve(ctx context.Context, symbol string, namespaces ...string) (*Symbol, error) {
	return r.resolve(ctx, KindClass, symbol, namespaces)
}

// ResolveFunction is Resolve for functions.
func (r *Registry) ResolveFunction(ctx context.Context, symbol string, namespaces ...string) (*Symbol, error) {
	return r.resolve(ctx, KindFunction, symbol, namespaces)
}

func (r *Registry) resolve(ctx context.Context, kind Kind, symbol string, namespaces []string) (*Symbol, error) {
	logger := ctxlog.FromContext(ctx).With("symbol", symbol, "kind", kind.String())

	r.mu.RLock()
	defer r.mu.RUnlock()

	if sym := r.lookup(kind, symbol); sym != nil {
		logger.Debug("Resolved symbol as given.", "qualified_name", sym.QualifiedName())
		return sym, nil
	}
	for _, ns := range namespaces {
		ns = strings.TrimSuffix(ns, ".")
		if ns == "" {
			continue
		}
		if sym := r.lookup(kind, ns+"."+symbol); sym != nil {
			logger.Debug("Resolved symbol through namespace.", "namespace", ns, "qualified_name", sym.QualifiedName())
			return sym, nil
		}
	}

	logger.Debug("Symbol not found.", "namespaces", namespaces)
	return nil, &SymbolNotFoundError{
		Kind:       kind,
		Symbol:     symbol,
		Namespaces: slices.Clone(namespaces),
	}
}

// lookup must be called with r.mu held.
func (r *Registry) lookup(kind Kind, name string) *Symbol {
	if name == "" {
		return nil
	}
	sym, ok := r.symbols[name]
	if !ok || sym.Kind != kind {
		return nil
	}
	return sym
}
