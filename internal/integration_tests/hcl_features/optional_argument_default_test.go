package integration_tests

import (
	"context"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/componentgo/internal/registry"
	"github.com/vk/componentgo/internal/testutil"
)

// TestHclFeatures_OptionalArgumentDefault tests that an optional argument
// keeps the default held by the input prototype when the declaration omits it,
// and that file-level defaults fill in arguments the target declares.
func TestHclFeatures_OptionalArgumentDefault(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `
			defaults {
				metadata = { source = "defaults-block" }
			}

			component "defaulter" "A" {
				arguments {
					required = "must-be-present"
				}
			}
		`,
	}

	type defaulterInput struct {
		Required string            `arg:"required"`
		Mode     string            `arg:"mode,optional"`
		Metadata map[string]string `arg:"metadata,optional"`
	}

	var captured defaulterInput
	var mu sync.Mutex

	module := &testutil.SimpleModule{
		ClassName: "defaulter",
		Class: &registry.Factory{
			NewInput: func() any {
				return &defaulterInput{Mode: "standard", Metadata: map[string]string{"source": "prototype"}}
			},
			Fn: func(_ context.Context, in *defaulterInput) (*defaulterInput, error) {
				mu.Lock()
				defer mu.Unlock()
				captured = *in
				return in, nil
			},
		},
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, module)

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertDeclarationRan(t, result, "A")

	want := defaulterInput{
		Required: "must-be-present",
		Mode:     "standard",
		Metadata: map[string]string{"source": "defaults-block"},
	}
	mu.Lock()
	defer mu.Unlock()
	if diff := cmp.Diff(want, captured); diff != "" {
		t.Errorf("captured input mismatch (-want +got):\n%s", diff)
	}
}
