package registry

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/vk/componentgo/internal/args"
	"github.com/vk/componentgo/internal/bind"
	"github.com/vk/componentgo/internal/ctxlog"
)

// InstantiateStrict resolves a class and constructs it with exactly the
// supplied arguments. Any key the constructor does not declare yields an
// *InvalidArgumentError.
func (r *Registry) InstantiateStrict(ctx context.Context, symbol string, namespaces []string, bag args.Bag) (any, error) {
	sym, err := r.Resolve(ctx, symbol, namespaces...)
	if err != nil {
		return nil, err
	}
	return CallStrict(ctx, sym, bag)
}

// InstantiateTolerant resolves a class and constructs it with the subset of
// bag the constructor declares. Other keys are dropped.
func (r *Registry) InstantiateTolerant(ctx context.Context, symbol string, namespaces []string, bag args.Bag) (any, error) {
	sym, err := r.Resolve(ctx, symbol, namespaces...)
	if err != nil {
		return nil, err
	}
	return CallTolerant(ctx, sym, bag)
}

// CallTolerant invokes an already resolved symbol with the subset of bag it
// declares and returns its result unchanged.
func CallTolerant(ctx context.Context, sym *Symbol, bag args.Bag) (any, error) {
	if sym == nil {
		return nil, errors.New("cannot call a nil symbol")
	}
	return sym.invoke(ctx, sym.filter(ctx, bag))
}

// CallStrict invokes an already resolved symbol, rejecting undeclared keys.
func CallStrict(ctx context.Context, sym *Symbol, bag args.Bag) (any, error) {
	if sym == nil {
		return nil, errors.New("cannot call a nil symbol")
	}
	if err := sym.check(bag); err != nil {
		return nil, err
	}
	return sym.invoke(ctx, bag)
}

// DefaultArgs maps each optional parameter of sym to its default value. The
// map is empty when no parameter declares a default. Values are read from a
// fresh input prototype on every call, so callers own what they receive.
func DefaultArgs(sym *Symbol) map[string]any {
	defaults := make(map[string]any)
	if sym == nil {
		return defaults
	}
	proto := reflect.ValueOf(sym.factory.NewInput()).Elem()
	for _, p := range sym.Params {
		if p.Optional {
			defaults[p.Name] = proto.FieldByIndex(p.index).Interface()
		}
	}
	return defaults
}

// check reports the first undeclared key in sorted order.
func (s *Symbol) check(bag args.Bag) error {
	for _, key := range args.Keys(bag) {
		if _, ok := s.byName[key]; !ok {
			return &InvalidArgumentError{Kind: s.Kind, Symbol: s.QualifiedName(), Key: key}
		}
	}
	return nil
}

func (s *Symbol) filter(ctx context.Context, bag args.Bag) args.Bag {
	logger := ctxlog.FromContext(ctx)
	selected := make(args.Bag, len(bag))
	for _, key := range args.Keys(bag) {
		if _, ok := s.byName[key]; ok {
			selected[key] = bag[key]
			continue
		}
		logger.Debug("Ignoring argument not declared by symbol.", "symbol", s.QualifiedName(), "argument", key)
	}
	return selected
}

// invoke binds bag onto a fresh input struct and calls the factory. Parameters
// missing from bag keep the prototype's default when optional.
func (s *Symbol) invoke(ctx context.Context, bag args.Bag) (any, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, logger := ctxlog.With(ctx, "symbol", s.QualifiedName())

	input := s.factory.NewInput()
	inputVal := reflect.ValueOf(input).Elem()

	for _, p := range s.Params {
		val, provided := bag[p.Name]
		if !provided {
			if p.Optional {
				continue
			}
			return nil, fmt.Errorf("%w: missing required argument %q for %s", ErrBinding, p.Name, s)
		}
		if err := bind.Assign(ctx, val, inputVal.FieldByIndex(p.index)); err != nil {
			return nil, fmt.Errorf("%w: failed to decode argument '%s' for %s: %w", ErrBinding, p.Name, s, err)
		}
	}

	logger.Debug("Calling factory.", "kind", s.Kind.String(), "arguments", args.Keys(bag))
	results := reflect.ValueOf(s.factory.Fn).Call([]reflect.Value{reflect.ValueOf(ctx), reflect.ValueOf(input)})
	out, errResult := results[0].Interface(), results[1].Interface()
	if errResult != nil {
		return nil, fmt.Errorf("%s: %w", s, errResult.(error))
	}
	return out, nil
}
