package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrSymbolNotFound matches every *SymbolNotFoundError.
	ErrSymbolNotFound = errors.New("symbol not found")
	// ErrInvalidArgument matches every *InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrBinding is wrapped by errors for missing or unconvertible argument values.
	ErrBinding = errors.New("argument binding failed")
)

// SymbolNotFoundError reports a symbol that no namespace could resolve.
type SymbolNotFoundError struct {
	Kind       Kind
	Symbol     string
	Namespaces []string
}

func (e *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("%s not found in %q: %s", e.Kind, e.Namespaces, e.Symbol)
}

func (e *SymbolNotFoundError) Is(target error) bool {
	return target == ErrSymbolNotFound
}

// InvalidArgumentError reports an argument key the target does not declare.
type InvalidArgumentError struct {
	Kind   Kind
	Symbol string // qualified name of the target
	Key    string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument for %s %s: %s", e.Kind, e.Symbol, e.Key)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
