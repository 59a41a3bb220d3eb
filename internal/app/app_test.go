package app

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/componentgo/internal/registry"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestApp_Run_HCL(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeConfig(t, "main.hcl", `
namespaces = ["text"]

defaults {
  sep = "+"
}

call "Join" "joined" {
  arguments {
    tokens = ["a", "b"]
  }
}

call "Join" "joined" {
  arguments {
    tokens = [upper("c"), "d"]
    extra  = true
  }
}

component "HTTPClient" "" {
  strict     = true
  namespaces = ["net"]
  arguments {
    timeout = "1s"
  }
}

call "io.Print" "printed" {
  arguments {
    value = { k = "v" }
  }
}
`)
	testApp, out, logs := SetupAppTest(t, &Config{ConfigPaths: []string{path}})

	// --- Act ---
	err := testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, `joined = "a+b"
joined_1 = "C+d"
HTTPClient = <*http.Client>
      k = "v"
printed = 1
`, out.String())
	assert.Contains(t, logs.String(), "Ignoring argument not declared by symbol.")

	results := testApp.Results()
	require.Len(t, results, 4)
	assert.Equal(t, "net.HTTPClient", results[2].Symbol.QualifiedName())
	assert.Equal(t, registry.KindFunction, results[3].Symbol.Kind)

	model := testApp.Model()
	require.Len(t, model.Declarations, 4)
	assert.Equal(t, []string{"text"}, model.Namespaces)
	assert.Equal(t, map[string]any{"sep": "+"}, model.Defaults)

	sym, err := testApp.Registry().ResolveFunction(context.Background(), "Join", model.Namespaces...)
	require.NoError(t, err)
	assert.Same(t, sym, results[0].Symbol)
}

func TestApp_Run_YAMLAndTOML(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(`
namespaces: [text]
calls:
  - symbol: DefaultString
    name: greeting
    arguments:
      default: hello
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.toml"), []byte(`
[[calls]]
symbol = "Uniquify"
arguments = { value = "x", taken = ["x"] }
`), 0o644))
	testApp, out, _ := SetupAppTest(t, &Config{ConfigPaths: []string{dir}})

	// --- Act ---
	err := testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "greeting = \"hello\"\nUniquify = \"x_1\"\n", out.String())
}

func TestApp_Run_StrictRejectsUnknownArgument(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "strict.hcl", `
call "text.Join" "" {
  arguments {
    tokens = ["a"]
    extra  = 1
  }
}
`)
	testApp, _, _ := SetupAppTest(t, &Config{ConfigPaths: []string{path}, ForceStrict: true})

	err := testApp.Run(context.Background())
	require.ErrorIs(t, err, registry.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "call 'text.Join'")
	assert.Contains(t, err.Error(), "extra")
}

func TestApp_Run_StrictIgnoresForeignDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "defaults.hcl", `
defaults {
  sep     = "/"
  timeout = "2s"
}

call "text.Join" "" {
  strict = true
  arguments {
    tokens = ["a", "b"]
  }
}
`)
	testApp, out, _ := SetupAppTest(t, &Config{ConfigPaths: []string{path}})

	require.NoError(t, testApp.Run(context.Background()))
	assert.Equal(t, "text.Join = \"a/b\"\n", out.String())
}

func TestApp_Run_SymbolNotFound(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "missing.hcl", `
namespaces = ["a.b", "c.d"]
component "Missing" "m" {}
`)
	testApp, _, _ := SetupAppTest(t, &Config{ConfigPaths: []string{path}})

	err := testApp.Run(context.Background())
	require.ErrorIs(t, err, registry.ErrSymbolNotFound)
	assert.Contains(t, err.Error(), "a.b")
	assert.Contains(t, err.Error(), "c.d")
	assert.Contains(t, err.Error(), "Missing")
}

func TestApp_Run_CanceledContext(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "one.hcl", `call "text.Join" "" {
  arguments {
    tokens = []
  }
}
`)
	testApp, _, _ := SetupAppTest(t, &Config{ConfigPaths: []string{path}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, testApp.Run(ctx), context.Canceled)
}

func TestApp_Run_NoDeclarations(t *testing.T) {
	t.Parallel()

	testApp, out, logs := SetupAppTest(t, &Config{ListPattern: "*"})

	require.NoError(t, testApp.Run(context.Background()))
	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), "No declarations found")
}

func TestApp_List(t *testing.T) {
	t.Parallel()

	testApp, out, _ := SetupAppTest(t, &Config{ListPattern: "text.*"})

	require.NoError(t, testApp.List("text.*"))
	assert.Equal(t, `function text.DefaultString(value = "", default)
function text.Join(tokens, sep = " ")
function text.StripToken(value, token)
function text.Uniquify(value, taken = null)
`, out.String())
}

func TestNewApp_LoadError(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "broken.hcl", `component "A" {`)
	_, err := NewApp(&SafeBuffer{}, &Config{ConfigPaths: []string{path}}, nil)
	require.ErrorContains(t, err, "failed to load configuration")
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{})
	require.Error(t, err)

	cfg, err := NewConfig(Config{ConfigPaths: []string{"x.hcl"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"x.hcl"}, cfg.ConfigPaths)
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "null", formatValue(nil))
	assert.Equal(t, "3", formatValue(3))
	assert.Equal(t, `"hi"`, formatValue("hi"))
	assert.Equal(t, "true", formatValue(true))
	assert.Equal(t, `["a", "b"]`, formatValue([]string{"a", "b"}))
	assert.Equal(t, "<chan int>", formatValue(make(chan int)))
	assert.Equal(t, "<float64>", formatValue(math.NaN()))
	assert.Equal(t, "<[]float64>", formatValue([]float64{1, math.NaN()}))
	assert.Equal(t, "9223372036854775807", formatValue(int64(math.MaxInt64)))
}

type nanModule struct{}

type nanInput struct{}

func (nanModule) Register(r *registry.Registry) {
	r.RegisterFunction("math.NaN", &registry.Factory{
		NewInput: func() any { return new(nanInput) },
		Fn: func(context.Context, *nanInput) (float64, error) {
			return math.NaN(), nil
		},
	})
}

func TestApp_Run_NaNResult(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeConfig(t, "main.hcl", `
call "math.NaN" "ratio" {}
`)
	testApp, out, _ := SetupAppTest(t, &Config{ConfigPaths: []string{path}}, nanModule{})

	// --- Act ---
	err := testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "ratio = <float64>\n", out.String())
	require.Len(t, testApp.Results(), 1)
	assert.True(t, math.IsNaN(testApp.Results()[0].Value.(float64)))
}
