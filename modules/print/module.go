package print

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/vk/componentgo/internal/ctxlog"
	"github.com/vk/componentgo/internal/registry"
)

// Module implements the registry.Module interface for this package. Output
// goes to Out, or to stdout when Out is nil.
type Module struct {
	Out io.Writer
}

// PrinterInput defines the arguments for the io.Printer class.
type PrinterInput struct {
	Prefix string `arg:"prefix,optional"`
	Quote  bool   `arg:"quote,optional"`
}

// PrintInput defines the arguments for the io.Print function.
type PrintInput struct {
	Value  map[string]string `arg:"value"`
	Prefix string            `arg:"prefix,optional"`
}

// Printer writes key/value maps, one sorted `key = value` line per entry.
type Printer struct {
	out    io.Writer
	prefix string
	quote  bool
}

// Print writes every entry of values.
func (p *Printer) Print(values map[string]string) error {
	if values == nil {
		_, err := fmt.Fprintf(p.out, "%s(null)\n", p.prefix)
		return err
	}
	for _, k := range slices.Sorted(maps.Keys(values)) {
		format := "%s%s = %s\n"
		if p.quote {
			format = "%s%s = %q\n"
		}
		if _, err := fmt.Fprintf(p.out, format, p.prefix, k, values[k]); err != nil {
			return err
		}
	}
	return nil
}

func (m *Module) writer() io.Writer {
	if m.Out == nil {
		return os.Stdout
	}
	return m.Out
}

// NewPrinter is the constructor of the io.Printer class.
func (m *Module) NewPrinter(ctx context.Context, input *PrinterInput) (*Printer, error) {
	return &Printer{out: m.writer(), prefix: input.Prefix, quote: input.Quote}, nil
}

// Print is the io.Print function. It returns the number of entries printed.
func (m *Module) Print(ctx context.Context, input *PrintInput) (int, error) {
	ctxlog.FromContext(ctx).Info("Printing input")

	p := &Printer{out: m.writer(), prefix: input.Prefix, quote: true}
	if err := p.Print(input.Value); err != nil {
		return 0, err
	}
	return len(input.Value), nil
}

// Register registers the printer class and the print function.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterClass("io.Printer", &registry.Factory{
		NewInput: func() any { return &PrinterInput{Prefix: "      ", Quote: true} },
		Fn:       m.NewPrinter,
	})
	r.RegisterFunction("io.Print", &registry.Factory{
		NewInput: func() any { return &PrintInput{Prefix: "      "} },
		Fn:       m.Print,
	})
}
