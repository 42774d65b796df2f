package config

import "time"

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Name:        "project-health",
			Version:     "1.0.0",
			Description: "Source code quality metrics for .NET solutions",
		},
		Analysis: AnalysisConfig{
			DocumentTimeout: 30 * time.Second,
			SourcePatterns:  []string{"**/*.cs"},
			ProjectPattern:  "**/*.csproj",
		},
		Concurrency: ConcurrencyConfig{
			MaxParallelDocuments: 8,
			MaxParallelProjects:  4,
		},
		Detectors: DetectorsConfig{
			FailFast: false,
			Complexity: ComplexityDetectorConfig{
				Enabled: true,
			},
			Maintainability: MaintainabilityDetectorConfig{
				Enabled: true,
			},
		},
		Exclusions: ExclusionsConfig{
			FilePatterns: []string{
				"**/bin/**", "**/obj/**",
				"**/*.Designer.cs", "**/*.g.cs",
			},
		},
		Severity: SeverityConfig{
			ComplexityLowMax:         10,
			ComplexityModerateMax:    20,
			MaintainabilityRedMax:    9,
			MaintainabilityYellowMax: 19,
		},
		Output: OutputConfig{
			Formats:          []string{"text"},
			OutputDir:        "",
			IncludeTimestamp: false,
			IncludeErrors:    true,
			TableWidth:       0,
		},
		Logging: LoggingConfig{
			Level:            "info",
			Format:           "text",
			IncludeTimestamp: true,
			IncludeCaller:    false,
			MaxSizeMB:        10,
			MaxBackups:       3,
		},
	}
}
