package config

import "time"

// Config is the root configuration structure
type Config struct {
	Agent       AgentConfig       `yaml:"agent"`
	Analysis    AnalysisConfig    `yaml:"analysis"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Detectors   DetectorsConfig   `yaml:"detectors"`
	Exclusions  ExclusionsConfig  `yaml:"exclusions"`
	Severity    SeverityConfig    `yaml:"severity"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// AgentConfig contains agent metadata
type AgentConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// AnalysisConfig contains settings for locating and walking documents
type AnalysisConfig struct {
	// DocumentTimeout bounds the statement walk of a single document; 0 disables it
	DocumentTimeout time.Duration `yaml:"document_timeout"`
	SourcePatterns  []string      `yaml:"source_patterns"`
	ProjectPattern  string        `yaml:"project_pattern"`
}

// ConcurrencyConfig contains concurrency settings
type ConcurrencyConfig struct {
	// MaxParallelDocuments limits metric computation across the whole solution
	MaxParallelDocuments int `yaml:"max_parallel_documents"`
	// MaxParallelProjects limits how many projects run their detectors at once
	MaxParallelProjects int `yaml:"max_parallel_projects"`
}

// DetectorsConfig contains settings for all detectors
type DetectorsConfig struct {
	FailFast        bool                          `yaml:"fail_fast"`
	Complexity      ComplexityDetectorConfig      `yaml:"complexity"`
	Maintainability MaintainabilityDetectorConfig `yaml:"maintainability"`
}

// ComplexityDetectorConfig contains complexity detector settings
type ComplexityDetectorConfig struct {
	Enabled bool `yaml:"enabled"`
}

// MaintainabilityDetectorConfig contains maintainability detector settings
type MaintainabilityDetectorConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ExclusionsConfig contains exclusion patterns, matched against paths
// relative to the solution root
type ExclusionsConfig struct {
	FilePatterns    []string `yaml:"file_patterns"`
	Files           []string `yaml:"files"`
	ProjectPatterns []string `yaml:"project_patterns"`
}

// SeverityConfig contains the tier boundaries. Each bound is inclusive.
type SeverityConfig struct {
	ComplexityLowMax         int     `yaml:"complexity_low_max"`
	ComplexityModerateMax    int     `yaml:"complexity_moderate_max"`
	MaintainabilityRedMax    float64 `yaml:"maintainability_red_max"`
	MaintainabilityYellowMax float64 `yaml:"maintainability_yellow_max"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	Formats          []string `yaml:"formats"`
	OutputDir        string   `yaml:"output_dir"`
	IncludeTimestamp bool     `yaml:"include_timestamp"`
	IncludeErrors    bool     `yaml:"include_errors"`
	TableWidth       int      `yaml:"table_width"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level            string `yaml:"level"`
	Format           string `yaml:"format"` // text, json
	File             string `yaml:"file"`
	IncludeTimestamp bool   `yaml:"include_timestamp"`
	IncludeCaller    bool   `yaml:"include_caller"`
	MaxSizeMB        int    `yaml:"max_size_mb"`
	MaxBackups       int    `yaml:"max_backups"`
}
