package controller

import (
	"context"
	"time"

	"project-health/src/config"
	"project-health/src/model"
	"project-health/src/service/csharp"
	"project-health/src/service/detector"
	"project-health/src/service/metrics"
	"project-health/src/service/workspace"
	"project-health/src/util"
)

// AnalysisController orchestrates the health analysis process
type AnalysisController struct {
	cfg    *config.Config
	parser workspace.Parser
}

// NewAnalysisController creates a new analysis controller backed by the C# parser
func NewAnalysisController(cfg *config.Config) *AnalysisController {
	return &AnalysisController{cfg: cfg, parser: csharp.NewParser()}
}

// AnalyzeRequest represents a request to analyze a solution
type AnalyzeRequest struct {
	SolutionPath string
	Progress     metrics.ProgressFunc // Optional: called after every document
}

// Analyze runs the full analysis pipeline
func (c *AnalysisController) Analyze(ctx context.Context, req AnalyzeRequest) (*model.Report, error) {
	startTime := time.Now()
	util.Info("Starting analysis for solution: %s", req.SolutionPath)

	// Discover projects and documents
	exclusions := util.NewExclusionMatcher(c.cfg.Exclusions)
	loader := workspace.NewLoader(c.cfg.Analysis, exclusions, c.parser)
	solution, err := loader.Load(req.SolutionPath)
	if err != nil {
		util.Error("Loading solution failed: %v", err)
		return nil, err
	}
	util.Info("Solution %s: %d projects, %d documents", solution.Name, len(solution.Projects), solution.DocumentCount())

	// Create metrics provider
	metricsProvider := metrics.NewProvider(c.cfg.Analysis, c.cfg.Concurrency)
	metricsProvider.SetProgress(req.Progress)
	util.Debug("Metrics provider initialized (max parallel documents: %d)", c.cfg.Concurrency.MaxParallelDocuments)

	// Create detector runner
	detectorRunner := detector.NewRunner(metricsProvider, c.cfg)

	// Run all detectors
	util.Info("Running detectors")
	projects, err := detectorRunner.RunAll(ctx, solution)
	if err != nil {
		util.Error("Detector run failed: %v", err)
		return nil, err
	}

	report := &model.Report{
		Solution: solution.Name,
		Projects: projects,
		Summary:  c.generateSummary(projects),
	}
	if c.cfg.Output.IncludeTimestamp {
		now := time.Now().UTC()
		report.GeneratedAt = &now
	}

	util.Info("Analysis complete: %d projects, %d documents, %d errors (took %v)",
		report.Summary.ProjectCount, report.Summary.DocumentCount, report.Summary.ErrorCount, time.Since(startTime))

	return report, nil
}

func (c *AnalysisController) generateSummary(projects []model.ProjectReport) model.ReportSummary {
	summary := model.ReportSummary{
		ProjectCount:          len(projects),
		ByComplexityTier:      make(map[model.ComplexityTier]int),
		ByMaintainabilityTier: make(map[model.MaintainabilityTier]int),
	}

	for _, p := range projects {
		summary.DocumentCount += p.DocumentCount
		summary.OmittedCount += len(p.Omitted)
		summary.ErrorCount += len(p.Errors)

		if p.Complexity != nil {
			for tier, n := range p.Complexity.Counts {
				summary.ByComplexityTier[tier] += n
			}
		}
		if p.Maintainability != nil {
			for tier, n := range p.Maintainability.Counts {
				summary.ByMaintainabilityTier[tier] += n
			}
		}
	}

	return summary
}
