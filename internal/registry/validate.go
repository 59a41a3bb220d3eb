package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/componentgo/internal/bind"
	"github.com/vk/componentgo/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Validate checks that every registered parameter can be written in a
// declaration file and bound from the values the loaders produce. Parameter
// names must be valid HCL identifiers and defaults must be representable as
// cty values. Parameters with no cty equivalent are accepted with a warning.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	symbols, err := r.Symbols("")
	if err != nil {
		return err
	}

	for _, sym := range symbols {
		defaults := DefaultArgs(sym)
		for _, p := range sym.Params {
			if !hclsyntax.ValidIdentifier(p.Name) {
				errs = append(errs, fmt.Sprintf("%s, parameter '%s': name is not a valid identifier", sym, p.Name))
			}
			if p.CtyType == cty.DynamicPseudoType {
				logger.Warn("Symbol has a parameter without a static type; values are bound without conversion checks.",
					"symbol", sym.QualifiedName(), "param", p.Name, "go_type", p.Type.String())
				continue
			}
			if !p.Optional {
				continue
			}
			if _, err := bind.ToCty(defaults[p.Name]); err != nil {
				errs = append(errs, fmt.Sprintf("%s, parameter '%s': default value cannot be represented: %v", sym, p.Name, err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	logger.Debug("Registry validation passed.", "symbols", len(symbols))
	return nil
}
