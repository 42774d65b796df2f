package report

import (
	"encoding/json"
	"fmt"

	"project-health/src/model"
)

type sarifRule struct {
	id          string
	description string
	level       string
}

var sarifRules = []sarifRule{
	{"complexity/moderate", "Document cyclomatic complexity is in the Moderate tier", "warning"},
	{"complexity/high", "Document cyclomatic complexity is in the High tier", "error"},
	{"maintainability/yellow", "Document maintainability index is in the Yellow tier", "warning"},
	{"maintainability/red", "Document maintainability index is in the Red tier", "error"},
	{"analysis/document-error", "A document could not be fully analyzed", "note"},
}

func (g *Generator) generateSARIF(report *model.Report) (string, error) {
	results := g.buildSARIFResults(report)

	sarif := map[string]any{
		"$schema": "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		"version": "2.1.0",
		"runs": []map[string]any{
			{
				"tool": map[string]any{
					"driver": map[string]any{
						"name":    "project-health",
						"version": g.version,
						"rules":   g.buildSARIFRules(results),
					},
				},
				"results": results,
			},
		},
	}

	data, err := json.MarshalIndent(sarif, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

// buildSARIFRules lists only the rules some result refers to, in a fixed order
func (g *Generator) buildSARIFRules(results []map[string]any) []map[string]any {
	used := make(map[string]bool)
	for _, r := range results {
		used[r["ruleId"].(string)] = true
	}

	rules := []map[string]any{}
	for _, rule := range sarifRules {
		if !used[rule.id] {
			continue
		}
		rules = append(rules, map[string]any{
			"id":   rule.id,
			"name": rule.id,
			"shortDescription": map[string]any{
				"text": rule.description,
			},
			"defaultConfiguration": map[string]any{
				"level": rule.level,
			},
		})
	}
	return rules
}

func (g *Generator) buildSARIFResults(report *model.Report) []map[string]any {
	results := []map[string]any{}

	for _, p := range report.Projects {
		if c := p.Complexity; c != nil {
			for _, tier := range c.Tiers {
				for _, doc := range tier.Documents {
					results = append(results, sarifResult(
						complexityRuleID(tier.Tier), complexityLevel(tier.Tier), doc.ID, doc.Path,
						fmt.Sprintf("%s complexity (%d) in project %s", tier.Tier, doc.Score, p.Project)))
				}
			}
		}

		if m := p.Maintainability; m != nil {
			for _, tier := range m.Tiers {
				for _, doc := range tier.Documents {
					results = append(results, sarifResult(
						maintainabilityRuleID(tier.Tier), maintainabilityLevel(tier.Tier), doc.ID, doc.Path,
						fmt.Sprintf("Maintainability index %s in project %s", indexText(doc.Index, doc.Display), p.Project)))
				}
			}
		}

		if g.cfg.IncludeErrors {
			for _, e := range p.Errors {
				results = append(results, sarifResult(
					"analysis/document-error", "note", "", e.Path,
					fmt.Sprintf("%s check incomplete (%s): %s", e.Check, e.Reason, e.Message)))
			}
		}
	}

	return results
}

func sarifResult(ruleID, level, id, path, message string) map[string]any {
	result := map[string]any{
		"ruleId":  ruleID,
		"level":   level,
		"message": map[string]any{"text": message},
		"locations": []map[string]any{
			{
				"physicalLocation": map[string]any{
					"artifactLocation": map[string]any{
						"uri": path,
					},
				},
			},
		},
	}
	if id != "" {
		result["partialFingerprints"] = map[string]any{"documentId/v1": id}
	}
	return result
}

func complexityRuleID(t model.ComplexityTier) string {
	if t == model.ComplexityHigh {
		return "complexity/high"
	}
	return "complexity/moderate"
}

func maintainabilityRuleID(t model.MaintainabilityTier) string {
	if t == model.MaintainabilityRed {
		return "maintainability/red"
	}
	return "maintainability/yellow"
}

func complexityLevel(t model.ComplexityTier) string {
	switch t {
	case model.ComplexityHigh:
		return "error"
	case model.ComplexityModerate:
		return "warning"
	default:
		return "note"
	}
}

func maintainabilityLevel(t model.MaintainabilityTier) string {
	switch t {
	case model.MaintainabilityRed:
		return "error"
	case model.MaintainabilityYellow:
		return "warning"
	default:
		return "note"
	}
}
