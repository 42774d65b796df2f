package detector

import (
	"context"
	"errors"

	"project-health/src/config"
	"project-health/src/model"
	"project-health/src/service/severity"
	"project-health/src/service/workspace"
	"project-health/src/util"
)

// MaintainabilityDetector aggregates document maintainability indices per project
type MaintainabilityDetector struct {
	BaseDetector
	cfg config.MaintainabilityDetectorConfig
}

// NewMaintainabilityDetector creates a new maintainability detector
func NewMaintainabilityDetector(base BaseDetector, cfg config.MaintainabilityDetectorConfig) *MaintainabilityDetector {
	return &MaintainabilityDetector{
		BaseDetector: base,
		cfg:          cfg,
	}
}

// Name returns the detector name
func (d *MaintainabilityDetector) Name() string {
	return "maintainability"
}

// IsEnabled returns whether the detector is enabled
func (d *MaintainabilityDetector) IsEnabled() bool {
	return d.cfg.Enabled
}

// Detect fills report.Maintainability. Listed documents whose index cannot be
// rendered are reported as document errors and keep an empty Display.
func (d *MaintainabilityDetector) Detect(ctx context.Context, project *workspace.Project, report *model.ProjectReport) error {
	pm, err := d.Metrics.ProjectMetrics(ctx, project)
	if err != nil {
		return err
	}

	results := pm.MaintainabilityResults()
	util.Debug("Maintainability detector: %d documents in %s", len(results.Documents), project.Name)

	summary, docErrs := d.summarize(results)
	report.Maintainability = summary
	if d.Cfg.Output.IncludeErrors {
		report.Errors = append(report.Errors, docErrs...)
	}
	return nil
}

func (d *MaintainabilityDetector) summarize(results model.ProjectMaintainabilityResult) (*model.MaintainabilitySummary, []model.DocumentError) {
	summary := &model.MaintainabilitySummary{
		DocumentCount: len(results.Documents),
		Counts: map[model.MaintainabilityTier]int{
			model.MaintainabilityRed:    0,
			model.MaintainabilityYellow: 0,
			model.MaintainabilityGreen:  0,
		},
	}
	if len(results.Documents) == 0 {
		return summary, nil
	}
	summary.HasData = true

	var docErrs []model.DocumentError
	byTier := make(map[model.MaintainabilityTier][]model.DocumentMaintainabilityResult)
	sum := 0.0
	for _, doc := range results.Documents {
		sum += doc.MaintainabilityIndex
		tier := d.Classifier.Maintainability(doc.MaintainabilityIndex)
		summary.Counts[tier]++
		byTier[tier] = append(byTier[tier], doc)
	}
	summary.Average = average(sum, len(results.Documents))
	summary.AverageDisplay = d.display(summary.Average)

	// Green documents are counted, never listed
	for _, tier := range []model.MaintainabilityTier{model.MaintainabilityYellow, model.MaintainabilityRed} {
		docs := byTier[tier]
		if len(docs) == 0 {
			continue
		}

		ts := model.MaintainabilityTierSummary{Tier: tier, Count: len(docs)}
		tierSum := 0.0
		for _, doc := range docs {
			tierSum += doc.MaintainabilityIndex

			display, err := d.Classifier.FormatMaintainability(doc.MaintainabilityIndex)
			if err != nil {
				docErrs = append(docErrs, negativeIndexError(doc, err))
			}
			ts.Documents = append(ts.Documents, model.MaintainabilityDocument{
				ID:      doc.Document.ID,
				Name:    doc.Document.Name,
				Path:    doc.Document.Path,
				Index:   doc.MaintainabilityIndex,
				Display: display,
			})
		}
		ts.Average = average(tierSum, len(docs))
		ts.AverageDisplay = d.display(ts.Average)
		summary.Tiers = append(summary.Tiers, ts)
	}

	return summary, docErrs
}

// display renders an aggregate, leaving it empty when it cannot be rendered
func (d *MaintainabilityDetector) display(index float64) string {
	s, err := d.Classifier.FormatMaintainability(index)
	if err != nil {
		if !errors.Is(err, severity.ErrNegativeIndex) {
			util.Warn("Formatting maintainability index: %v", err)
		}
		return ""
	}
	return s
}

func negativeIndexError(doc model.DocumentMaintainabilityResult, err error) model.DocumentError {
	return model.DocumentError{
		Document: doc.Document.Name,
		Path:     doc.Document.Path,
		Check:    "maintainability",
		Reason:   model.ReasonNegativeIndex,
		Message:  err.Error(),
	}
}
