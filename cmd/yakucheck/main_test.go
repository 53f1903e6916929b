package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handsFile = "../../internal/handfile/testdata/hands.yaml"

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRun(t *testing.T) {
	out, logs, err := execute(t, "--jobs", "2", handsFile)
	require.NoError(t, err)

	assert.Contains(t, out, "thirteen-sided kokushi\n  shape: kokushi, wait: -, open: false\n")
	assert.Contains(t, out, "Thirteen-Sided Thirteen Orphans")
	assert.Contains(t, out, "shape: seven pairs, wait: tanki")
	assert.Contains(t, out, "All Honours")
	assert.Contains(t, out, "shape: standard, wait: ryanmen, open: false")
	assert.Contains(t, out, "dora 4, honba 2")
	assert.Contains(t, out, "Robbing a Kan")
	assert.Contains(t, logs, "Loaded hand file")
}

func TestRun_Rules(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("rules:\n  double_yakuman: false\n"), 0o600))

	out, _, err := execute(t, "--config", cfg, "--log-level", "error", handsFile)
	require.NoError(t, err)
	assert.NotContains(t, out, "double yakuman")
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t)
	assert.Error(t, err, "no files")

	_, stderr, err := execute(t, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Equal(t, 1, strings.Count(stderr, "missing.yaml"), "the failure is reported once")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`
hands:
  - shape: seven_pairs
    tiles: 1122m 3344p 5566s EE
    context: {agari: 9m}
`), 0o600))
	_, _, err = execute(t, bad)
	assert.ErrorContains(t, err, "malformed hand")

	_, _, err = execute(t, "--log-level", "loud", handsFile)
	assert.Error(t, err)
}

func TestRun_EnvFile(t *testing.T) {
	t.Cleanup(func() { os.Unsetenv("YAKU_RULES_DOUBLE_YAKUMAN") })
	env := filepath.Join(t.TempDir(), "yaku.env")
	require.NoError(t, os.WriteFile(env, []byte("YAKU_RULES_DOUBLE_YAKUMAN=false\n"), 0o600))

	out, _, err := execute(t, "--env-file", env, "--cache", "0", handsFile)
	require.NoError(t, err)
	assert.NotContains(t, out, "double yakuman")

	_, _, err = execute(t, "--env-file", filepath.Join(t.TempDir(), "missing.env"), handsFile)
	assert.Error(t, err)
}
