package integration_tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/componentgo/internal/registry"
	"github.com/vk/componentgo/internal/testutil"
)

type originModule struct{}

type originInput struct{}

func (originModule) Register(r *registry.Registry) {
	for _, name := range []string{"first.Origin", "second.Origin", "third.Origin"} {
		ns := name
		r.RegisterFunction(name, &registry.Factory{
			NewInput: func() any { return new(originInput) },
			Fn: func(context.Context, *originInput) (string, error) {
				return ns, nil
			},
		})
	}
}

func TestHclFeatures_NamespaceSearch_DeclarationNamespacesComeFirst(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `
			namespaces = ["missing", "third"]

			call "Origin" "from_file" {}

			call "Origin" "from_block" {
				namespaces = ["second", "first"]
			}

			call "first.Origin" "qualified" {
				namespaces = ["second"]
			}
		`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, originModule{})

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Equal(t, "third.Origin", testutil.FindResult(t, result, "from_file").Value)
	require.Equal(t, "second.Origin", testutil.FindResult(t, result, "from_block").Value)
	require.Equal(t, "first.Origin", testutil.FindResult(t, result, "qualified").Value)
}

func TestHclFeatures_Functions(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.hcl": `
			call "text.Join" "joined" {
				arguments {
					tokens = concat(split(",", "a,b"), [lower("C")])
					sep    = format("%s", "|")
				}
			}
		`,
	}

	result := testutil.RunIntegrationTest(t, files)

	require.NoError(t, result.Err)
	require.Equal(t, "joined = \"a|b|c\"\n", result.Output)
}
