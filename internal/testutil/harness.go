package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/componentgo/internal/app"
	"github.com/vk/componentgo/internal/registry"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, &app.Config{}, files, modules...)
}

// RunIntegrationTestWithContext writes files into a temporary directory, builds
// an App over it with the given modules (core modules when none) and runs it.
// Startup panics are recovered and reported through Err.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, appConfig *app.Config, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()

	// 1. Write all declaration files to a temporary directory. Relative names
	//    such as "nested/b.yaml" create the matching subdirectories.
	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	// 2. Point the app at the directory and capture everything it writes.
	outBuffer := &app.SafeBuffer{}
	logBuffer := &app.SafeBuffer{}
	appConfig.ConfigPaths = []string{tmpDir}
	appConfig.LogLevel = "debug"
	appConfig.LogFormat = "text"
	appConfig.LogWriter = logBuffer

	result := &HarnessResult{}
	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("application startup panicked | %v", r)
			}
		}()
		result.App, result.Err = app.NewApp(outBuffer, appConfig, nil, modules...)
	}()

	// 3. Run only when startup succeeded.
	if result.Err == nil {
		result.Err = result.App.Run(ctx)
	}

	if os.Getenv("COMPONENTGO_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	result.Output = outBuffer.String()
	result.LogOutput = logBuffer.String()
	return result
}
