package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/componentgo/internal/testutil"
)

// TestCLIBehavior_ConfigMerges loads HCL, YAML and TOML files from one
// directory tree. Files run in lexical path order, namespaces accumulate, and
// defaults from earlier files win.
func TestCLIBehavior_ConfigMerges(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"a.hcl": `
			namespaces = ["text"]
			defaults {
				sep = "-"
			}
			call "Join" "first" {
				arguments {
					tokens = ["a", "b"]
				}
			}
		`,
		"b/nested.yaml": `
defaults:
  sep: "+"
calls:
  - symbol: Join
    name: second
    arguments:
      tokens: [c, d]
`,
		"c.toml": `
[[calls]]
symbol = "Join"
name = "first"
arguments = { tokens = ["e", "f"], sep = "_" }
`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files)

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Equal(t, "first = \"a-b\"\nsecond = \"c-d\"\nfirst_1 = \"e_f\"\n", result.Output)
	testutil.AssertDeclarationRan(t, result, "first_1")
}
