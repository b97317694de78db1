package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `name: diamond-wing
surfaces:
  - name: wing
    te_thickness_tol: 0.01
    sections:
      - points: [[1, 0, 0.01], [0.5, 0, 0.1], [0, 0, 0], [0.5, 0, -0.1], [1, 0, -0.01]]
        chord: 1
        le_offset: [0, 0, 0]
      - points: [[1, 0, 0.01], [0.5, 0, 0.1], [0, 0, 0], [0.5, 0, -0.1], [1, 0, -0.01]]
        chord: 1
        le_offset: [0, 1, 0]
logging:
  level: error
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	path := writeConfig(t, testConfig)

	out, err := runCmd(t, "validate", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "surface wing: blunt trailing edge")
	assert.Contains(t, out, "Validation passed")
}

func TestValidateRejectsBadConfig(t *testing.T) {
	path := writeConfig(t, testConfig+`
mesh:
  growth_ratio: 0.5
`)

	_, err := runCmd(t, "validate", "-c", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "growth_ratio")
}

func TestValidateMissingConfig(t *testing.T) {
	_, err := runCmd(t, "validate", "-c", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestGenerateCommand(t *testing.T) {
	path := writeConfig(t, testConfig)
	output := filepath.Join(t.TempDir(), "wing.geo")

	out, err := runCmd(t, "generate", "-c", path, "-o", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+output)
	assert.Contains(t, out, "tag wake:wing")

	script, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(script), `Physical Surface("wall:wing")`)
	assert.Contains(t, string(script), `Physical Volume("fluid")`)
	assert.Contains(t, string(script), "Mesh.Algorithm = 5;")
}

func TestGenerateDefaultOutputName(t *testing.T) {
	path := writeConfig(t, testConfig)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(wd) }()

	_, err = runCmd(t, "generate", "-c", path)
	require.NoError(t, err)
	_, err = os.Stat("diamond-wing.geo")
	assert.NoError(t, err)
}
