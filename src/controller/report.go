package controller

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"project-health/src/config"
	"project-health/src/model"
	"project-health/src/service/report"
	"project-health/src/util"
)

// ReportController handles report generation
type ReportController struct {
	cfg *config.Config
}

// NewReportController creates a new report controller
func NewReportController(cfg *config.Config) *ReportController {
	return &ReportController{cfg: cfg}
}

// GenerateReports generates reports in all configured formats. With an output
// directory each format goes to its own file; otherwise all go to w.
func (c *ReportController) GenerateReports(healthReport *model.Report, w io.Writer) ([]string, error) {
	util.Debug("Generating reports for %d formats: %v", len(c.cfg.Output.Formats), c.cfg.Output.Formats)
	reportGenerator := report.NewGenerator(c.cfg.Output, c.cfg.Agent.Version)
	var outputPaths []string

	for _, format := range c.cfg.Output.Formats {
		util.Debug("Generating %s report", format)
		output, err := reportGenerator.Generate(healthReport, format)
		if err != nil {
			util.Error("Failed to generate %s report: %v", format, err)
			return nil, err
		}

		if c.cfg.Output.OutputDir == "" {
			if _, err := io.WriteString(w, output); err != nil {
				return nil, fmt.Errorf("writing %s report: %w", format, err)
			}
			continue
		}

		// Determine output path
		outputPath := c.getOutputPath(healthReport.Solution, format)

		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
			util.Error("Failed to create output directory: %v", err)
			return nil, err
		}

		// Write file
		if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
			util.Error("Failed to write report to %s: %v", outputPath, err)
			return nil, err
		}

		util.Info("Report written: %s", outputPath)
		outputPaths = append(outputPaths, outputPath)
	}

	return outputPaths, nil
}

// GenerateToString generates a report to a string
func (c *ReportController) GenerateToString(healthReport *model.Report, format string) (string, error) {
	reportGenerator := report.NewGenerator(c.cfg.Output, c.cfg.Agent.Version)
	return reportGenerator.Generate(healthReport, format)
}

func (c *ReportController) getOutputPath(solution, format string) string {
	filename := solution + "-health-report." + report.Extension(format)
	return filepath.Join(c.cfg.Output.OutputDir, filename)
}
