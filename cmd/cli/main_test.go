package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return shouldExit=true,
	// which run treats as a clean no-op.
	out := &bytes.Buffer{}
	err := run(out, []string{"-h"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_InvalidScenarioFails(t *testing.T) {
	t.Parallel()

	invalidHCL := `
		warehouse {
			process {
		// Missing closing braces here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "run.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0o600)
	require.NoError(t, err, "failed to set up test file")

	out := &bytes.Buffer{}
	runErr := run(out, []string{"-out", t.TempDir(), filePath})

	require.Error(t, runErr)
	require.True(t, strings.Contains(runErr.Error(), filePath),
		"the error should name the failing scenario file")
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	scenario := `warehouse {
  process {
    name = "EndToEnd"
  }
}
`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "run.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(scenario), 0o600))
	outputDir := t.TempDir()

	out := &bytes.Buffer{}
	err := run(out, []string{"-out", outputDir, "-timezone", "UTC", filePath})
	require.NoError(t, err)

	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.True(t, strings.HasSuffix(entries[0].Name(), ".xml"))
}
