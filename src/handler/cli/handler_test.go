package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-health/src/model"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func testConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project-health.yaml")
	writeFile(t, path, `
logging:
  level: error
severity:
  complexity_low_max: 2
`)
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	h := New()
	var stdout, stderr bytes.Buffer
	h.rootCmd.SetOut(&stdout)
	h.rootCmd.SetErr(&stderr)
	h.rootCmd.SetArgs(args)
	err := h.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version", "--config", testConfig(t))
	require.NoError(t, err)
	assert.Equal(t, "project-health 1.0.0\n", out)
}

func TestDetectorsCommand(t *testing.T) {
	out, _, err := execute(t, "detectors", "--config", testConfig(t))
	require.NoError(t, err)
	assert.Contains(t, out, "complexity")
	assert.Contains(t, out, "maintainability")
	assert.Contains(t, out, "(enabled)")
}

func TestConfigCommand(t *testing.T) {
	out, _, err := execute(t, "config", "--config", testConfig(t))
	require.NoError(t, err)
	assert.Contains(t, out, "complexity_low_max: 2")
	assert.Contains(t, out, "complexity_moderate_max: 20")
}

func TestConfigCommand_MissingFile(t *testing.T) {
	_, _, err := execute(t, "config", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestAnalyzeCommand(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Lib", "Lib.csproj"), `<Project Sdk="Microsoft.NET.Sdk"></Project>`)
	writeFile(t, filepath.Join(root, "Lib", "Math.cs"), `
class MathUtil
{
    int Clamp(int value, int min, int max)
    {
        if (value < min) return min;
        if (value > max) return max;
        return value + 0;
    }
}`)

	out, stderr, err := execute(t, "analyze", root, "--format", "json", "--config", testConfig(t))
	require.NoError(t, err)
	assert.Contains(t, stderr, "Projects: 1")

	var report model.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Projects, 1)

	c := report.Projects[0].Complexity
	require.NotNil(t, c)
	assert.Equal(t, 3, c.Total)
	require.Len(t, c.Tiers, 1)
	assert.Equal(t, model.ComplexityModerate, c.Tiers[0].Tier)
	assert.Equal(t, "Math.cs", c.Tiers[0].Documents[0].Name)
}

func TestAnalyzeCommand_WritesFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "App.csproj"), `<Project></Project>`)
	writeFile(t, filepath.Join(root, "App.cs"), `class App { void Run() { System.Console.WriteLine(1); } }`)
	outDir := filepath.Join(t.TempDir(), "out")

	_, stderr, err := execute(t, "analyze", "--solution", filepath.Join(root, "App.csproj"),
		"--output", outDir, "--format", "text,markdown", "--config", testConfig(t))
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(outDir, "App-health-report.txt"))
	assert.FileExists(t, filepath.Join(outDir, "App-health-report.md"))
	assert.Contains(t, stderr, "Report written to")
}

func TestAnalyzeCommand_BadFormat(t *testing.T) {
	_, _, err := execute(t, "analyze", t.TempDir(), "--format", "xml", "--config", testConfig(t))
	assert.ErrorContains(t, err, "unsupported format")
}
