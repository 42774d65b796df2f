package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"project-health/src/service/detector"
	"project-health/src/service/metrics"
)

var detectorDescriptions = map[string]string{
	"complexity":      "Cyclomatic complexity per document, totals and Moderate/High tiers per project",
	"maintainability": "Maintainability index per document, averages and Yellow/Red tiers per project",
}

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", h.cfg.Agent.Name, h.cfg.Agent.Version)
		},
	}
}

func (h *Handler) detectorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detectors",
		Short: "List available detectors",
		Run: func(cmd *cobra.Command, args []string) {
			runner := detector.NewRunner(metrics.NewProvider(h.cfg.Analysis, h.cfg.Concurrency), h.cfg)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Available detectors:")
			for _, name := range runner.ListDetectors() {
				status := "disabled"
				if runner.GetDetector(name).IsEnabled() {
					status = "enabled"
				}
				fmt.Fprintf(out, "  - %-15s : %s (%s)\n", name, detectorDescriptions[name], status)
			}
		},
	}
}
