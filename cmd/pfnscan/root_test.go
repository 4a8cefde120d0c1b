package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	resetFlags()
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	output, err := captureOutput(t, rootCmd.Execute)

	require.NoError(t, err)
	assertContains(t, output, []string{"pfnscan dev", "commit: none"})
}

func TestVersionCommand_BuildInfo(t *testing.T) {
	resetFlags()
	origVersion, origCommit, origDate := version, commit, date
	version, commit, date = "v1.2.0", "abc1234", "2026-10-19T00:00:00Z"
	t.Cleanup(func() { version, commit, date = origVersion, origCommit, origDate })
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	output, err := captureOutput(t, rootCmd.Execute)

	require.NoError(t, err)
	assert.Equal(t, "pfnscan v1.2.0\n  commit: abc1234\n  built: 2026-10-19T00:00:00Z\n", output)
}

func TestRootCommand_LogFile(t *testing.T) {
	resetFlags()
	input := writeInput(t, "dump.out", "header", "x: pfn 1 soft-dirty", "x: pfn 1 soft-dirty")
	logPath := filepath.Join(t.TempDir(), "pfnscan.log")
	rootCmd.SetArgs([]string{"check", input, "--log-file", logPath})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	output, err := captureOutput(t, rootCmd.Execute)
	require.NoError(t, err)
	assert.Equal(t, "1\n1 match!\n1 matches\n", output)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.NotEmpty(t, lines)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "skipping malformed line", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.EqualValues(t, 1, rec["line"])
}

func TestRootCommand_UnknownFlag(t *testing.T) {
	resetFlags()
	rootCmd.SetArgs([]string{"check", "--no-such-flag"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	_, err := captureOutput(t, rootCmd.Execute)
	assert.Error(t, err)
}

func TestRootCommand_LogFileRecordsCompletion(t *testing.T) {
	resetFlags()
	input := writeInput(t, "dump.out", "x: pfn 1 soft-dirty", "x: pfn 2 soft-dirty")
	logPath := filepath.Join(t.TempDir(), "pfnscan.log")
	rootCmd.SetArgs([]string{"check", input, "--log-file", logPath})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	_, err := captureOutput(t, rootCmd.Execute)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 1, "debug records stay out without --verbose")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "scan complete", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])
	assert.EqualValues(t, 2, rec["lines"])
	assert.EqualValues(t, 0, rec["matches"])
}
