package report

import (
	"fmt"
	"strings"

	"project-health/src/model"
)

// generateText renders the line-oriented log: every project's complexity
// block, then every project's maintainability block
func (g *Generator) generateText(report *model.Report) (string, error) {
	var sb strings.Builder

	if hasSection(report, func(p model.ProjectReport) bool { return p.Complexity != nil }) {
		sb.WriteString("***** Cyclomatic Complexity Check *****\n")
		for _, p := range report.Projects {
			if p.Complexity != nil {
				writeComplexityText(&sb, p.Project, p.Complexity)
			}
		}
	}

	if hasSection(report, func(p model.ProjectReport) bool { return p.Maintainability != nil }) {
		sb.WriteString("***** Maintainability Index Check *****\n")
		for _, p := range report.Projects {
			if p.Maintainability != nil {
				writeMaintainabilityText(&sb, p.Project, p.Maintainability)
			}
		}
	}

	// All omitted documents come before any document error
	if g.cfg.IncludeErrors {
		for _, p := range report.Projects {
			for _, path := range p.Omitted {
				fmt.Fprintf(&sb, "Omitted Document: %s; Project: %s\n", path, p.Project)
			}
		}
		for _, p := range report.Projects {
			for _, e := range p.Errors {
				fmt.Fprintf(&sb, "Document Error: %s; Check: %s; Reason: %s; %s\n", e.Path, e.Check, e.Reason, e.Message)
			}
		}
	}

	return sb.String(), nil
}

func hasSection(report *model.Report, present func(model.ProjectReport) bool) bool {
	for _, p := range report.Projects {
		if present(p) {
			return true
		}
	}
	return false
}

func writeComplexityText(sb *strings.Builder, project string, c *model.ComplexitySummary) {
	fmt.Fprintf(sb, "Project: %s; Documents Count: %d\n", project, c.DocumentCount)
	if !c.HasData {
		fmt.Fprintf(sb, "Overall Complexity Rating: %d; Average Document Complexity: no data\n", c.Total)
		return
	}
	fmt.Fprintf(sb, "Overall Complexity Rating: %d; Average Document Complexity: %.2f\n", c.Total, c.Average)

	for _, tier := range c.Tiers {
		fmt.Fprintf(sb, "%s Complexity Documents Count: %d; Average %s Document Complexity: %.2f\n",
			tier.Tier, tier.Count, tier.Tier, tier.Average)
		for _, doc := range tier.Documents {
			fmt.Fprintf(sb, "%s Complexity Document: %s; Complexity Score: %d\n", tier.Tier, doc.Name, doc.Score)
		}
	}
}

func writeMaintainabilityText(sb *strings.Builder, project string, m *model.MaintainabilitySummary) {
	fmt.Fprintf(sb, "Project: %s; Documents Count: %d\n", project, m.DocumentCount)
	fmt.Fprintf(sb, "Average Document Maintainability Index: %s\n", maintainabilityText(m.HasData, m.Average, m.AverageDisplay))

	for _, tier := range m.Tiers {
		fmt.Fprintf(sb, "%s Maintainability Index Documents Count: %d; Average %s Document Maintainability Index: %s\n",
			tier.Tier, tier.Count, tier.Tier, indexText(tier.Average, tier.AverageDisplay))
		for _, doc := range tier.Documents {
			fmt.Fprintf(sb, "%s Maintainability Index Document: %s; Maintainability Index: %s\n",
				tier.Tier, doc.Name, indexText(doc.Index, doc.Display))
		}
	}
}
