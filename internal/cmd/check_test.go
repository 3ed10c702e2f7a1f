package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCheckCommand executes the check command against args with stdout
// captured, returning the output and the execution error.
func runCheckCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"check"}, args...))

	err := cmd.Execute()
	return buf.String(), err
}

func TestCheck_AllPathsReadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ok.txt")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))

	out, err := runCheckCommand(t, "--no-color", path)

	require.NoError(t, err)
	assert.Contains(t, out, "checked 1 path(s)")
	assert.NotContains(t, out, "[err]")
}

func TestCheck_MissingPathIsReported(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	out, err := runCheckCommand(t, "--no-color", missing)

	require.Error(t, err)
	assert.Contains(t, out, "[err] path does not exist")
	assert.Contains(t, out, "path:\t"+missing)
	assert.Contains(t, out, "1 of 1 paths failed")
}

func TestCheck_LanguageFlag(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	out, err := runCheckCommand(t, "--no-color", "--lang", "ja", missing)

	require.Error(t, err)
	assert.Contains(t, out, "[err] パスが存在しません")
}

func TestCheck_LogLimitFlag(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")

	out, err := runCheckCommand(t, "--no-color", "--log-limit", "1", first, second)

	require.Error(t, err)
	assert.Contains(t, out, "[note] log limit 1 exceeded")
}

func TestCheck_WritesMirrorLogFile(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.txt")
	logFile := filepath.Join(dir, "report.log")

	_, err := runCheckCommand(t, "--no-color", "--log-file", logFile, missing)
	require.Error(t, err)

	content, readErr := os.ReadFile(logFile)
	require.NoError(t, readErr)

	assert.Contains(t, string(content), "--- Log File ---")
	assert.Contains(t, string(content), " * generated by conslog")
	assert.Contains(t, string(content), "[err] path does not exist")
	// The mirror never carries color escapes.
	assert.NotContains(t, string(content), "\x1b[")
}

func TestCheck_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.txt")
	configPath := filepath.Join(dir, "conslog.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("language: ja\nno_color: true\n"), 0o644))

	out, err := runCheckCommand(t, "--config", configPath, missing)

	require.Error(t, err)
	assert.Contains(t, out, "[err] パスが存在しません")
}
