package detector

import (
	"context"

	"project-health/src/config"
	"project-health/src/model"
	"project-health/src/service/workspace"
	"project-health/src/util"
)

// ComplexityDetector aggregates document cyclomatic complexity per project
type ComplexityDetector struct {
	BaseDetector
	cfg config.ComplexityDetectorConfig
}

// NewComplexityDetector creates a new complexity detector
func NewComplexityDetector(base BaseDetector, cfg config.ComplexityDetectorConfig) *ComplexityDetector {
	return &ComplexityDetector{
		BaseDetector: base,
		cfg:          cfg,
	}
}

// Name returns the detector name
func (d *ComplexityDetector) Name() string {
	return "complexity"
}

// IsEnabled returns whether the detector is enabled
func (d *ComplexityDetector) IsEnabled() bool {
	return d.cfg.Enabled
}

// Detect fills report.Complexity
func (d *ComplexityDetector) Detect(ctx context.Context, project *workspace.Project, report *model.ProjectReport) error {
	pm, err := d.Metrics.ProjectMetrics(ctx, project)
	if err != nil {
		return err
	}

	results := pm.ComplexityResults()
	util.Debug("Complexity detector: %d documents in %s", len(results.Documents), project.Name)
	report.Complexity = d.summarize(results)
	return nil
}

func (d *ComplexityDetector) summarize(results model.ProjectComplexityResult) *model.ComplexitySummary {
	summary := &model.ComplexitySummary{
		DocumentCount: len(results.Documents),
		Counts: map[model.ComplexityTier]int{
			model.ComplexityLow:      0,
			model.ComplexityModerate: 0,
			model.ComplexityHigh:     0,
		},
	}
	if len(results.Documents) == 0 {
		return summary
	}
	summary.HasData = true

	byTier := make(map[model.ComplexityTier][]model.DocumentComplexityResult)
	for _, doc := range results.Documents {
		summary.Total += doc.ComplexityScore
		tier := d.Classifier.Complexity(doc.ComplexityScore)
		summary.Counts[tier]++
		byTier[tier] = append(byTier[tier], doc)
	}
	summary.Average = average(float64(summary.Total), len(results.Documents))

	// Low documents are counted, never listed
	for _, tier := range []model.ComplexityTier{model.ComplexityModerate, model.ComplexityHigh} {
		docs := byTier[tier]
		if len(docs) == 0 {
			continue
		}

		ts := model.ComplexityTierSummary{Tier: tier, Count: len(docs)}
		sum := 0
		for _, doc := range docs {
			sum += doc.ComplexityScore
			ts.Documents = append(ts.Documents, model.ComplexityDocument{
				ID:    doc.Document.ID,
				Name:  doc.Document.Name,
				Path:  doc.Document.Path,
				Score: doc.ComplexityScore,
			})
		}
		ts.Average = average(float64(sum), len(docs))
		summary.Tiers = append(summary.Tiers, ts)
	}

	return summary
}
