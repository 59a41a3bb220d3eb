package app

import (
	"fmt"
	"strings"

	"github.com/vk/componentgo/internal/registry"
)

// List writes every registered symbol matching the glob pattern, one per line,
// with its parameters. Optional parameters show their default.
func (a *App) List(pattern string) error {
	symbols, err := a.registry.Symbols(pattern)
	if err != nil {
		return err
	}
	a.logger.Debug("Listing symbols.", "pattern", pattern, "matches", len(symbols))

	for _, sym := range symbols {
		defaults := registry.DefaultArgs(sym)
		params := make([]string, len(sym.Params))
		for i, p := range sym.Params {
			if p.Optional {
				params[i] = fmt.Sprintf("%s = %s", p.Name, formatValue(defaults[p.Name]))
			} else {
				params[i] = p.Name
			}
		}
		if _, err := fmt.Fprintf(a.outW, "%s(%s)\n", sym, strings.Join(params, ", ")); err != nil {
			return err
		}
	}
	return nil
}
