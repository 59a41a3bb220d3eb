package app

import (
	"context"
	"fmt"
	"slices"

	"github.com/vk/componentgo/internal/args"
	"github.com/vk/componentgo/internal/config"
	"github.com/vk/componentgo/internal/ctxlog"
	"github.com/vk/componentgo/internal/registry"
	"github.com/vk/componentgo/internal/textutil"
)

// Result is the outcome of running one declaration.
type Result struct {
	Name        string
	Declaration *config.Declaration
	Symbol      *registry.Symbol
	Value       any
}

// Run constructs every component and calls every function of the loaded model
// in declaration order, writing one `name = value` line per result. The first
// failure aborts the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "declarations", len(a.model.Declarations))

	if len(a.model.Declarations) == 0 {
		a.logger.Warn("No declarations found, nothing to run.")
		return nil
	}

	for _, decl := range a.model.Declarations {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := a.runDeclaration(ctx, decl)
		if err != nil {
			return fmt.Errorf("%s '%s' (%s): %w", decl.Kind, textutil.DefaultString(decl.Name, decl.Symbol), decl.Source, err)
		}
		a.results = append(a.results, res)
		if _, err := fmt.Fprintf(a.outW, "%s = %s\n", res.Name, formatValue(res.Value)); err != nil {
			return err
		}
	}

	a.logger.Info("Run finished.", "results", len(a.results))
	return nil
}

func (a *App) runDeclaration(ctx context.Context, decl *config.Declaration) (*Result, error) {
	name, err := textutil.UniquifyString(textutil.DefaultString(decl.Name, decl.Symbol), a.names)
	if err != nil {
		return nil, err
	}
	ctx, logger := ctxlog.With(ctx, "declaration", name)

	namespaces := append(slices.Clone(decl.Namespaces), a.model.Namespaces...)
	strict := decl.Strict || a.cfg.ForceStrict

	var sym *registry.Symbol
	switch decl.Kind {
	case config.KindComponent:
		sym, err = a.registry.Resolve(ctx, decl.Symbol, namespaces...)
	case config.KindCall:
		sym, err = a.registry.ResolveFunction(ctx, decl.Symbol, namespaces...)
	default:
		err = fmt.Errorf("unsupported declaration kind %s", decl.Kind)
	}
	if err != nil {
		return nil, err
	}

	bag := args.Patch(decl.Arguments, a.defaultsFor(sym))
	logger.Debug("Running declaration.", "target", sym.String(), "strict", strict, "arguments", args.Keys(bag))

	var value any
	if strict {
		value, err = registry.CallStrict(ctx, sym, bag)
	} else {
		value, err = registry.CallTolerant(ctx, sym, bag)
	}
	if err != nil {
		return nil, err
	}

	a.names[name] = struct{}{}
	return &Result{Name: name, Declaration: decl, Symbol: sym, Value: value}, nil
}

// defaultsFor selects the model defaults that sym declares, so shared
// defaults never trip strict mode.
func (a *App) defaultsFor(sym *registry.Symbol) args.Bag {
	selected := make(args.Bag)
	for key, value := range a.model.Defaults {
		if _, ok := sym.Param(key); ok {
			selected[key] = value
		}
	}
	return selected
}
