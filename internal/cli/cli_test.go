package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		args        []string
		wantPaths   []string
		wantFormat  string
		wantLevel   string
		wantList    string
		wantStrict  bool
		wantExit    bool
		wantErrCode int
	}{
		{
			name:       "positional paths",
			args:       []string{"a.hcl", "dir"},
			wantPaths:  []string{"a.hcl", "dir"},
			wantFormat: "text",
			wantLevel:  "info",
		},
		{
			name:       "config flags and options",
			args:       []string{"-config", "a.yaml", "-c", "b.toml", "-log-format", "JSON", "-log-level", "debug", "-strict"},
			wantPaths:  []string{"a.yaml", "b.toml"},
			wantFormat: "json",
			wantLevel:  "debug",
			wantStrict: true,
		},
		{
			name:       "list without paths",
			args:       []string{"-list", "text.*"},
			wantFormat: "text",
			wantLevel:  "info",
			wantList:   "text.*",
		},
		{
			name:     "no arguments prints usage",
			args:     nil,
			wantExit: true,
		},
		{
			name:     "help",
			args:     []string{"-h"},
			wantExit: true,
		},
		{
			name:        "unknown flag",
			args:        []string{"-nope"},
			wantErrCode: 2,
		},
		{
			name:        "bad log format",
			args:        []string{"-log-format", "xml", "a.hcl"},
			wantErrCode: 2,
		},
		{
			name:        "bad log level",
			args:        []string{"-log-level", "loud", "a.hcl"},
			wantErrCode: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := &bytes.Buffer{}

			cfg, shouldExit, err := Parse(tc.args, out)

			if tc.wantErrCode != 0 {
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, tc.wantErrCode, exitErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantExit, shouldExit)
			if tc.wantExit {
				assert.Nil(t, cfg)
				assert.Contains(t, out.String(), "Usage:")
				return
			}
			assert.Equal(t, tc.wantPaths, cfg.ConfigPaths)
			assert.Equal(t, tc.wantFormat, cfg.LogFormat)
			assert.Equal(t, tc.wantLevel, cfg.LogLevel)
			assert.Equal(t, tc.wantList, cfg.ListPattern)
			assert.Equal(t, tc.wantStrict, cfg.ForceStrict)
		})
	}
}
