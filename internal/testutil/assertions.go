package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/componentgo/internal/app"
)

// AssertDeclarationRan checks the log output within a HarnessResult to confirm
// that the declaration with the given result name was run.
func AssertDeclarationRan(t *testing.T, result *HarnessResult, name string) {
	t.Helper()

	expectedLogSubstring := fmt.Sprintf("declaration=%s ", name)
	require.True(t,
		strings.Contains(result.LogOutput, expectedLogSubstring),
		"expected log output for declaration '%s' was not found in logs", name,
	)
}

// FindResult returns the result with the given name, failing the test when
// there is none.
func FindResult(t *testing.T, result *HarnessResult, name string) *app.Result {
	t.Helper()

	require.NotNil(t, result.App, "app was not created")
	for _, r := range result.App.Results() {
		if r.Name == name {
			return r
		}
	}
	require.Failf(t, "result not found", "no result named '%s'", name)
	return nil
}
