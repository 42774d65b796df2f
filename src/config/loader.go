package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// envVarPattern matches ${VAR} or ${VAR:-default}
var envVarPattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::-([^}]*))?\}`)

// Loader handles configuration loading from YAML or TOML files
type Loader struct{}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load loads configuration from a file with environment variable substitution.
// Environment variables can be referenced in the file using:
//   - ${VAR_NAME} - substitutes the value of VAR_NAME, empty string if not set
//   - ${VAR_NAME:-default} - substitutes VAR_NAME or "default" if not set
//
// Files ending in .toml are read as TOML, everything else as YAML. Values not
// present in the file keep their defaults.
func (l *Loader) Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	filePath := l.resolveConfigPath(configPath)
	if filePath == "" {
		// No config file found, use defaults
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := []byte(l.expandEnvVars(string(data)))

	if strings.EqualFold(filepath.Ext(filePath), ".toml") {
		expanded, err = tomlToYAML(expanded)
		if err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := yaml.Unmarshal(expanded, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filePath, err)
	}

	return cfg, nil
}

// tomlToYAML re-encodes a TOML document as YAML so both formats share the
// yaml struct tags and duration parsing.
func tomlToYAML(data []byte) ([]byte, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

func (l *Loader) resolveConfigPath(configPath string) string {
	if configPath != "" {
		return configPath
	}

	home, _ := os.UserHomeDir()
	defaults := []string{
		"project-health.yaml",
		"project-health.toml",
		"config/project-health.yaml",
		filepath.Join(home, ".project-health", "config.yaml"),
	}

	for _, path := range defaults {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// expandEnvVars expands environment variable references in the input string
func (l *Loader) expandEnvVars(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		defaultVal := ""
		if len(submatches) >= 3 {
			defaultVal = submatches[2]
		}

		if val, exists := os.LookupEnv(varName); exists {
			return val
		}

		return defaultVal
	})
}

// Validate checks the boundary tables and limits
func (c *Config) Validate() error {
	s := c.Severity
	if s.ComplexityLowMax >= s.ComplexityModerateMax {
		return fmt.Errorf("severity.complexity_low_max (%d) must be below complexity_moderate_max (%d)",
			s.ComplexityLowMax, s.ComplexityModerateMax)
	}
	if s.MaintainabilityRedMax >= s.MaintainabilityYellowMax {
		return fmt.Errorf("severity.maintainability_red_max (%v) must be below maintainability_yellow_max (%v)",
			s.MaintainabilityRedMax, s.MaintainabilityYellowMax)
	}
	if c.Concurrency.MaxParallelDocuments < 1 {
		return fmt.Errorf("concurrency.max_parallel_documents must be at least 1, got %d",
			c.Concurrency.MaxParallelDocuments)
	}
	if c.Concurrency.MaxParallelProjects < 1 {
		return fmt.Errorf("concurrency.max_parallel_projects must be at least 1, got %d",
			c.Concurrency.MaxParallelProjects)
	}
	if c.Analysis.DocumentTimeout < 0 {
		return fmt.Errorf("analysis.document_timeout must not be negative")
	}
	return nil
}
