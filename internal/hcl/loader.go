package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/componentgo/internal/args"
	"github.com/vk/componentgo/internal/config"
	"github.com/vk/componentgo/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.FileLoader interface.
type Loader struct {
	evalCtx *hcl.EvalContext
}

// NewLoader creates a new HCL declaration loader.
func NewLoader() *Loader {
	return &Loader{evalCtx: newEvalContext()}
}

// Extensions implements config.FileLoader.
func (l *Loader) Extensions() []string {
	return []string{".hcl"}
}

// Load reads every .hcl file under paths. It exists so the HCL loader can be
// used on its own as a config.Loader.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	return config.NewMultiLoader(l).Load(ctx, paths...)
}

// LoadFile parses and translates a single HCL file.
func (l *Loader) LoadFile(ctx context.Context, path string) (*config.Model, error) {
	hclFile, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return l.decode(ctx, hclFile.Body, path)
}

// LoadBytes parses and translates HCL source held in memory. filename is only
// used in diagnostics and as the declarations' source.
func (l *Loader) LoadBytes(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return l.decode(ctx, hclFile.Body, filename)
}

func (l *Loader) decode(ctx context.Context, body hcl.Body, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx).With("file", path)

	content, diags := body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	model := config.NewModel()
	if attr, ok := content.Attributes["namespaces"]; ok {
		if diags := gohcl.DecodeExpression(attr.Expr, l.evalCtx, &model.Namespaces); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
		}
	}

	// Blocks are visited in source order so declarations run in the order written.
	for _, block := range content.Blocks {
		switch block.Type {
		case "defaults":
			defaults, err := l.evaluateAttributes(block.Body)
			if err != nil {
				return nil, fmt.Errorf("in %s, defaults: %w", path, err)
			}
			model.Defaults = args.Patch(model.Defaults, defaults)
		case "component", "call":
			kind := config.KindComponent
			if block.Type == "call" {
				kind = config.KindCall
			}
			decl, err := l.translateDeclaration(ctx, kind, block, path)
			if err != nil {
				return nil, err
			}
			model.Declarations = append(model.Declarations, decl)
		}
	}

	logger.Debug("Decoded HCL file.", "declarations", len(model.Declarations))
	return model, nil
}
