package detector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"project-health/src/config"
	"project-health/src/model"
	"project-health/src/service/metrics"
	"project-health/src/service/workspace"
	"project-health/src/util"
)

// Runner manages and runs all detectors.
// It computes document metrics once, then builds one report per project.
type Runner struct {
	detectors []Detector
	metrics   *metrics.Provider
	cfg       *config.Config
}

// NewRunner creates a new detector runner with all detectors registered
func NewRunner(metricsProvider *metrics.Provider, cfg *config.Config) *Runner {
	base := NewBaseDetector(metricsProvider, cfg)

	detectors := []Detector{
		NewComplexityDetector(base, cfg.Detectors.Complexity),
		NewMaintainabilityDetector(base, cfg.Detectors.Maintainability),
	}

	util.Debug("Detector runner initialized with %d detectors", len(detectors))
	for _, d := range detectors {
		status := "disabled"
		if d.IsEnabled() {
			status = "enabled"
		}
		util.Debug("  - %s: %s", d.Name(), status)
	}

	return &Runner{
		detectors: detectors,
		metrics:   metricsProvider,
		cfg:       cfg,
	}
}

// RunAll executes all enabled detectors for every project and returns the
// project reports in solution order
func (r *Runner) RunAll(ctx context.Context, solution *workspace.Solution) ([]model.ProjectReport, error) {
	startTime := time.Now()
	util.Info("Starting project health checks")

	if err := r.metrics.Compute(ctx, solution); err != nil {
		return nil, err
	}

	var (
		reports = make([]model.ProjectReport, len(solution.Projects))
		wg      sync.WaitGroup
		errChan = make(chan error, len(solution.Projects))
		sem     = make(chan struct{}, r.maxParallelProjects())
	)

	for i, project := range solution.Projects {
		wg.Add(1)
		go func(i int, project *workspace.Project) {
			defer wg.Done()

			sem <- struct{}{}        // Acquire semaphore
			defer func() { <-sem }() // Release semaphore

			report, err := r.runProject(ctx, project)
			if err != nil {
				util.Error("Project %s failed: %v", project.Name, err)
				if r.cfg.Detectors.FailFast {
					errChan <- err
				}
			}
			reports[i] = report
		}(i, project)
	}

	wg.Wait()
	close(errChan)

	// Check for errors
	if err, ok := <-errChan; ok {
		util.Error("Analysis aborted due to error: %v", err)
		return nil, err
	}

	util.Info("Checks complete for %d projects (took %v)", len(reports), time.Since(startTime))
	return reports, nil
}

func (r *Runner) runProject(ctx context.Context, project *workspace.Project) (model.ProjectReport, error) {
	report := model.ProjectReport{
		Project:       project.Name,
		Path:          project.Path,
		DocumentCount: len(project.Documents),
	}

	pm, err := r.metrics.ProjectMetrics(ctx, project)
	if err != nil {
		return report, fmt.Errorf("project %s: %w", project.Name, err)
	}
	for _, doc := range pm.Omitted() {
		report.Omitted = append(report.Omitted, doc.Path)
	}
	if r.cfg.Output.IncludeErrors {
		report.Errors = append(report.Errors, pm.Errors()...)
	}

	// Detectors share the report, so they run one after another
	var firstErr error
	for _, d := range r.detectors {
		if !d.IsEnabled() {
			util.Debug("Skipping disabled detector: %s", d.Name())
			continue
		}

		detectorStart := time.Now()
		if err := d.Detect(ctx, project, &report); err != nil {
			util.Error("Detector %s failed on %s: %v", d.Name(), project.Name, err)
			if firstErr == nil {
				firstErr = fmt.Errorf("detector %s: %w", d.Name(), err)
			}
			if r.cfg.Detectors.FailFast {
				break
			}
			continue
		}
		util.Debug("Detector %s finished %s (took %v)", d.Name(), project.Name, time.Since(detectorStart))
	}

	return report, firstErr
}

func (r *Runner) maxParallelProjects() int {
	if r.cfg.Concurrency.MaxParallelProjects < 1 {
		return 1
	}
	return r.cfg.Concurrency.MaxParallelProjects
}

// GetDetector returns a detector by name
func (r *Runner) GetDetector(name string) Detector {
	for _, d := range r.detectors {
		if d.Name() == name {
			return d
		}
	}
	return nil
}

// ListDetectors returns names of all registered detectors
func (r *Runner) ListDetectors() []string {
	names := make([]string, len(r.detectors))
	for i, d := range r.detectors {
		names[i] = d.Name()
	}
	return names
}
