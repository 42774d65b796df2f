package report

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"project-health/src/model"
)

const defaultTableWidth = 100

var tableHeaders = []string{
	"PROJECT", "DOCS", "TOTAL CC", "AVG CC", "MODERATE", "HIGH", "AVG MI", "YELLOW", "RED", "OMITTED", "ERRORS",
}

// generateTable renders one row per project
func (g *Generator) generateTable(report *model.Report) (string, error) {
	width := g.cfg.TableWidth
	if width <= 0 {
		width = defaultTableWidth
	}

	rows := make([][]string, 0, len(report.Projects))
	for _, p := range report.Projects {
		rows = append(rows, projectRow(p))
	}

	baseStyle := lipgloss.NewStyle().Padding(0, 1)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(tableHeaders...).
		Width(width).
		Rows(rows...).
		StyleFunc(func(_, _ int) lipgloss.Style {
			return baseStyle
		})

	return fmt.Sprintf("Solution: %s\n%s\n", report.Solution, tbl.Render()), nil
}

func projectRow(p model.ProjectReport) []string {
	row := []string{p.Project, strconv.Itoa(p.DocumentCount), "-", "-", "-", "-", "-", "-", "-",
		strconv.Itoa(len(p.Omitted)), strconv.Itoa(len(p.Errors))}

	if c := p.Complexity; c != nil {
		row[2] = strconv.Itoa(c.Total)
		if c.HasData {
			row[3] = fmt.Sprintf("%.2f", c.Average)
		} else {
			row[3] = "no data"
		}
		row[4] = strconv.Itoa(c.Counts[model.ComplexityModerate])
		row[5] = strconv.Itoa(c.Counts[model.ComplexityHigh])
	}

	if m := p.Maintainability; m != nil {
		row[6] = maintainabilityText(m.HasData, m.Average, m.AverageDisplay)
		row[7] = strconv.Itoa(m.Counts[model.MaintainabilityYellow])
		row[8] = strconv.Itoa(m.Counts[model.MaintainabilityRed])
	}

	return row
}
