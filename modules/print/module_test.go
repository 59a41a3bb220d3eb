package print

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/componentgo/internal/args"
	"github.com/vk/componentgo/internal/registry"
)

func TestPrint(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	r := registry.New()
	(&Module{Out: out}).Register(r)
	fn, err := r.ResolveFunction(context.Background(), "Print", "io")
	require.NoError(t, err)

	// --- Act ---
	n, err := registry.CallStrict(context.Background(), fn, args.Bag{
		"value":  map[string]any{"b": "2", "a": "1"},
		"prefix": "> ",
	})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "> a = \"1\"\n> b = \"2\"\n", out.String())
}

func TestPrinter(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	r := registry.New()
	(&Module{Out: out}).Register(r)

	// --- Act ---
	obj, err := r.InstantiateTolerant(context.Background(), "io.Printer", nil, args.Bag{"quote": false, "extra": 1})
	require.NoError(t, err)
	printer := obj.(*Printer)
	require.NoError(t, printer.Print(map[string]string{"k": "v"}))
	require.NoError(t, printer.Print(nil))

	// --- Assert ---
	require.Equal(t, "      k = v\n      (null)\n", out.String())
}
