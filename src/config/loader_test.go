package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 10, cfg.Severity.ComplexityLowMax)
	assert.Equal(t, 20, cfg.Severity.ComplexityModerateMax)
	assert.Equal(t, 9.0, cfg.Severity.MaintainabilityRedMax)
	assert.Equal(t, 19.0, cfg.Severity.MaintainabilityYellowMax)
	assert.True(t, cfg.Detectors.Complexity.Enabled)
	assert.True(t, cfg.Detectors.Maintainability.Enabled)
	assert.Equal(t, []string{"text"}, cfg.Output.Formats)
	assert.False(t, cfg.Output.IncludeTimestamp)
	assert.Equal(t, 8, cfg.Concurrency.MaxParallelDocuments)
	assert.Equal(t, 4, cfg.Concurrency.MaxParallelProjects)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "project-health.yaml", `
analysis:
  document_timeout: 5s
concurrency:
  max_parallel_documents: 2
  max_parallel_projects: 3
severity:
  complexity_low_max: 5
output:
  formats: [json, sarif]
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Analysis.DocumentTimeout)
	assert.Equal(t, 2, cfg.Concurrency.MaxParallelDocuments)
	assert.Equal(t, 3, cfg.Concurrency.MaxParallelProjects)
	assert.Equal(t, 5, cfg.Severity.ComplexityLowMax)
	assert.Equal(t, 20, cfg.Severity.ComplexityModerateMax, "unset values keep defaults")
	assert.Equal(t, []string{"json", "sarif"}, cfg.Output.Formats)
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "project-health.toml", `
[analysis]
document_timeout = "2s"

[severity]
maintainability_red_max = 10.5
maintainability_yellow_max = 25.0

[detectors.complexity]
enabled = false
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Analysis.DocumentTimeout)
	assert.Equal(t, 10.5, cfg.Severity.MaintainabilityRedMax)
	assert.Equal(t, 25.0, cfg.Severity.MaintainabilityYellowMax)
	assert.False(t, cfg.Detectors.Complexity.Enabled)
	assert.True(t, cfg.Detectors.Maintainability.Enabled)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("PH_OUT_DIR", "/tmp/reports")
	path := writeConfig(t, "project-health.yaml", `
output:
  output_dir: ${PH_OUT_DIR}
logging:
  level: ${PH_UNSET_LEVEL:-debug}
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/reports", cfg.Output.OutputDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_RejectsInvertedBoundaries(t *testing.T) {
	path := writeConfig(t, "project-health.yaml", `
severity:
  complexity_low_max: 30
  complexity_moderate_max: 20
`)

	_, err := NewLoader().Load(path)
	assert.ErrorContains(t, err, "complexity_low_max")
}

func TestLoad_RejectsZeroProjectParallelism(t *testing.T) {
	path := writeConfig(t, "project-health.yaml", `
concurrency:
  max_parallel_projects: 0
`)

	_, err := NewLoader().Load(path)
	assert.ErrorContains(t, err, "max_parallel_projects")
}
