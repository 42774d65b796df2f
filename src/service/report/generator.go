package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"project-health/src/config"
	"project-health/src/model"
	"project-health/src/util"
)

// Formats lists the supported output formats
var Formats = []string{"text", "json", "markdown", "sarif", "table"}

// Generator generates reports in various formats
type Generator struct {
	cfg     config.OutputConfig
	version string
}

// NewGenerator creates a new report generator
func NewGenerator(cfg config.OutputConfig, version string) *Generator {
	return &Generator{cfg: cfg, version: version}
}

// Extension returns the file extension used for a format
func Extension(format string) string {
	switch format {
	case "markdown", "md":
		return "md"
	case "sarif":
		return "sarif"
	case "json":
		return "json"
	case "table":
		return "table.txt"
	default:
		return "txt"
	}
}

// Generate generates a report in the specified format
func (g *Generator) Generate(report *model.Report, format string) (string, error) {
	util.Debug("Generating report in %s format (%d projects)", format, len(report.Projects))
	switch format {
	case "text", "txt":
		return g.generateText(report)
	case "json":
		return g.generateJSON(report)
	case "markdown", "md":
		return g.generateMarkdown(report)
	case "sarif":
		return g.generateSARIF(report)
	case "table":
		return g.generateTable(report)
	default:
		util.Warn("Unsupported report format requested: %s", format)
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (g *Generator) generateJSON(report *model.Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

func (g *Generator) generateMarkdown(report *model.Report) (string, error) {
	var sb strings.Builder

	// Header
	sb.WriteString("# Project Health Report\n\n")
	sb.WriteString(fmt.Sprintf("**Solution:** %s\n", report.Solution))
	if report.GeneratedAt != nil {
		sb.WriteString(fmt.Sprintf("**Generated:** %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))
	}
	sb.WriteString("\n")

	// Summary
	s := report.Summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Projects:** %d\n", s.ProjectCount))
	sb.WriteString(fmt.Sprintf("- **Documents:** %d\n", s.DocumentCount))
	if s.OmittedCount > 0 {
		sb.WriteString(fmt.Sprintf("- **Omitted:** %d\n", s.OmittedCount))
	}
	if s.ErrorCount > 0 {
		sb.WriteString(fmt.Sprintf("- **Errors:** %d\n", s.ErrorCount))
	}
	sb.WriteString("\n")

	sb.WriteString("### Documents by Complexity\n\n")
	sb.WriteString("| Tier | Count |\n")
	sb.WriteString("|------|-------|\n")
	for _, tier := range []model.ComplexityTier{model.ComplexityHigh, model.ComplexityModerate, model.ComplexityLow} {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", tier, s.ByComplexityTier[tier]))
	}
	sb.WriteString("\n")

	sb.WriteString("### Documents by Maintainability\n\n")
	sb.WriteString("| Tier | Count |\n")
	sb.WriteString("|------|-------|\n")
	for _, tier := range []model.MaintainabilityTier{model.MaintainabilityRed, model.MaintainabilityYellow, model.MaintainabilityGreen} {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", tier, s.ByMaintainabilityTier[tier]))
	}
	sb.WriteString("\n")

	// Projects
	sb.WriteString("## Projects\n\n")
	for _, p := range report.Projects {
		sb.WriteString(fmt.Sprintf("### %s\n\n", p.Project))
		sb.WriteString(fmt.Sprintf("- **Path:** `%s`\n", p.Path))
		sb.WriteString(fmt.Sprintf("- **Documents:** %d\n", p.DocumentCount))

		if c := p.Complexity; c != nil {
			if c.HasData {
				sb.WriteString(fmt.Sprintf("- **Total Complexity:** %d\n", c.Total))
				sb.WriteString(fmt.Sprintf("- **Average Complexity:** %.2f\n", c.Average))
			} else {
				sb.WriteString("- **Average Complexity:** no data\n")
			}
		}
		if m := p.Maintainability; m != nil {
			sb.WriteString(fmt.Sprintf("- **Average Maintainability:** %s\n", maintainabilityText(m.HasData, m.Average, m.AverageDisplay)))
		}
		sb.WriteString("\n")

		if c := p.Complexity; c != nil {
			for _, tier := range c.Tiers {
				sb.WriteString(fmt.Sprintf("#### %s complexity (%d, average %.2f)\n\n", tier.Tier, tier.Count, tier.Average))
				sb.WriteString("| Document | Score |\n")
				sb.WriteString("|----------|-------|\n")
				for _, doc := range tier.Documents {
					sb.WriteString(fmt.Sprintf("| `%s` | %d |\n", doc.Path, doc.Score))
				}
				sb.WriteString("\n")
			}
		}

		if m := p.Maintainability; m != nil {
			for _, tier := range m.Tiers {
				sb.WriteString(fmt.Sprintf("#### %s maintainability (%d, average %s)\n\n",
					tier.Tier, tier.Count, indexText(tier.Average, tier.AverageDisplay)))
				sb.WriteString("| Document | Index |\n")
				sb.WriteString("|----------|-------|\n")
				for _, doc := range tier.Documents {
					sb.WriteString(fmt.Sprintf("| `%s` | %s |\n", doc.Path, indexText(doc.Index, doc.Display)))
				}
				sb.WriteString("\n")
			}
		}

		if len(p.Omitted) > 0 {
			sb.WriteString("#### Omitted documents\n\n")
			for _, path := range p.Omitted {
				sb.WriteString(fmt.Sprintf("- `%s`\n", path))
			}
			sb.WriteString("\n")
		}

		if len(p.Errors) > 0 {
			sb.WriteString("#### Errors\n\n")
			for _, e := range p.Errors {
				sb.WriteString(fmt.Sprintf("- `%s` %s (%s): %s\n", e.Path, e.Check, e.Reason, e.Message))
			}
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}

// indexText falls back to the bare number when no tier string exists
func indexText(index float64, display string) string {
	if display != "" {
		return display
	}
	return fmt.Sprintf("%.2f", index)
}

func maintainabilityText(hasData bool, average float64, display string) string {
	if !hasData {
		return "no data"
	}
	return indexText(average, display)
}
