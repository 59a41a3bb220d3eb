// This file translates decoded HCL blocks into the format-agnostic
// configuration model defined in the config package.

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/vk/componentgo/internal/bind"
	"github.com/vk/componentgo/internal/config"
	"github.com/vk/componentgo/internal/ctxlog"
)

// translateDeclaration converts a `component` or `call` block into the agnostic model.
func (l *Loader) translateDeclaration(ctx context.Context, kind config.DeclarationKind, block *hcl.Block, path string) (*config.Declaration, error) {
	symbol, name := block.Labels[0], block.Labels[1]
	logger := ctxlog.FromContext(ctx).With("symbol", symbol, "name", name)
	logger.Debug("Translating HCL block to internal config model.", "kind", kind.String())

	var b declBody
	if diags := gohcl.DecodeBody(block.Body, l.evalCtx, &b); diags.HasErrors() {
		return nil, fmt.Errorf("in %s %s '%s' (%s): %w", kind, symbol, name, path, diags)
	}

	decl := &config.Declaration{
		Kind:       kind,
		Symbol:     symbol,
		Name:       name,
		Namespaces: b.Namespaces,
		Arguments:  make(map[string]any),
		Source:     path,
	}
	if b.Strict != nil {
		decl.Strict = *b.Strict
	}
	if b.Arguments != nil {
		arguments, err := l.evaluateAttributes(b.Arguments.Body)
		if err != nil {
			return nil, fmt.Errorf("in %s %s '%s' (%s): %w", kind, symbol, name, path, err)
		}
		decl.Arguments = arguments
	}
	return decl, nil
}

// evaluateAttributes evaluates every attribute of body and returns their native
// Go values. Nested blocks are not allowed.
func (l *Loader) evaluateAttributes(body hcl.Body) (map[string]any, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	values := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(l.evalCtx)
		if diags.HasErrors() {
			return nil, diags
		}
		native, err := bind.ToNative(val)
		if err != nil {
			return nil, fmt.Errorf("attribute '%s': %w", name, err)
		}
		values[name] = native
	}
	return values, nil
}
