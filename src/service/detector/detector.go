package detector

import (
	"context"

	"project-health/src/config"
	"project-health/src/model"
	"project-health/src/service/metrics"
	"project-health/src/service/severity"
	"project-health/src/service/workspace"
)

// Detector is the interface for all project checks
type Detector interface {
	// Name returns the detector name
	Name() string

	// IsEnabled returns whether the detector is enabled
	IsEnabled() bool

	// Detect aggregates the project's document metrics into its section of report
	Detect(ctx context.Context, project *workspace.Project, report *model.ProjectReport) error
}

// BaseDetector provides common functionality for detectors
type BaseDetector struct {
	Metrics    *metrics.Provider
	Classifier *severity.Classifier
	Cfg        *config.Config
}

// NewBaseDetector creates a new base detector
func NewBaseDetector(metricsProvider *metrics.Provider, cfg *config.Config) BaseDetector {
	return BaseDetector{
		Metrics:    metricsProvider,
		Classifier: severity.NewClassifier(cfg.Severity),
		Cfg:        cfg,
	}
}

// average returns sum/n, or 0 for an empty set
func average(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
