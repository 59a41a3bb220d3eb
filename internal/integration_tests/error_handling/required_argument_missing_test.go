package integration_tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/componentgo/internal/registry"
	"github.com/vk/componentgo/internal/testutil"
)

type greeterInput struct {
	Name string `arg:"name"`
}

func newGreeterModule() *testutil.SimpleModule {
	return &testutil.SimpleModule{
		FunctionName: "greet.Hello",
		Function: &registry.Factory{
			NewInput: func() any { return new(greeterInput) },
			Fn: func(_ context.Context, in *greeterInput) (string, error) {
				return "hello " + in.Name, nil
			},
		},
	}
}

// Test for: App run fails if a required argument is missing.
func TestErrorHandling_RequiredArgumentMissing_FailsRun(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `
			call "greet.Hello" "A" {
				arguments {
					# The required 'name' argument is omitted here.
				}
			}
		`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, newGreeterModule())

	// --- Assert ---
	require.ErrorIs(t, result.Err, registry.ErrBinding)
	require.Contains(t, result.Err.Error(), `missing required argument "name"`)
	require.Empty(t, result.Output)
}

// Test for: App run fails if an argument cannot be converted to the declared type.
func TestErrorHandling_ArgumentTypeMismatch_FailsRun(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `
			call "greet.Hello" "A" {
				arguments {
					name = ["not", "a", "string"]
				}
			}
		`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, newGreeterModule())

	// --- Assert ---
	require.ErrorIs(t, result.Err, registry.ErrBinding)
	require.Contains(t, result.Err.Error(), "failed to decode argument 'name'")
}
