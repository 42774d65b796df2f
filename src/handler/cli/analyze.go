package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"project-health/src/controller"
	"project-health/src/service/report"
	"project-health/src/util"
)

func (h *Handler) analyzeCmd() *cobra.Command {
	var (
		solutionPath    string
		outputDir       string
		formats         []string
		timeout         time.Duration
		documentTimeout time.Duration
		progress        bool
		failFast        bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [solution]",
		Short: "Analyze a solution for complexity and maintainability",
		Long: "Loads a .sln file, a .csproj file, or a directory of projects, computes per-document " +
			"metrics and prints a report per project",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				solutionPath = args[0]
			}

			if outputDir != "" {
				h.cfg.Output.OutputDir = outputDir
			}
			if len(formats) > 0 {
				h.cfg.Output.Formats = formats
			}
			for _, f := range h.cfg.Output.Formats {
				if !slices.Contains(report.Formats, f) && f != "md" && f != "txt" {
					return fmt.Errorf("unsupported format %q (supported: %v)", f, report.Formats)
				}
			}
			if cmd.Flags().Changed("document-timeout") {
				h.cfg.Analysis.DocumentTimeout = documentTimeout
			}
			if failFast {
				h.cfg.Detectors.FailFast = true
			}
			if h.cfg.Output.TableWidth <= 0 && h.cfg.Output.OutputDir == "" {
				h.cfg.Output.TableWidth = terminalWidth(os.Stdout)
			}

			util.Info("Analyzing solution: %s (timeout: %v)", solutionPath, timeout)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			req := controller.AnalyzeRequest{SolutionPath: solutionPath}
			var bar *progressReporter
			if progress && isTerminal(os.Stderr) {
				bar = newProgressReporter(os.Stderr)
				req.Progress = bar.Update
			}

			// Run analysis
			analysisCtrl := controller.NewAnalysisController(h.cfg)
			healthReport, err := analysisCtrl.Analyze(ctx, req)
			bar.Finish()
			if err != nil {
				util.Error("Analysis failed: %v", err)
				return fmt.Errorf("analysis failed: %w", err)
			}

			// Output results
			reportCtrl := controller.NewReportController(h.cfg)
			paths, err := reportCtrl.GenerateReports(healthReport, cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("generating reports: %w", err)
			}
			for _, path := range paths {
				fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", path)
			}

			// Print summary to stderr
			s := healthReport.Summary
			fmt.Fprintf(cmd.ErrOrStderr(), "\nAnalysis complete:\n")
			fmt.Fprintf(cmd.ErrOrStderr(), "  Projects: %d\n", s.ProjectCount)
			fmt.Fprintf(cmd.ErrOrStderr(), "  Documents: %d (omitted: %d)\n", s.DocumentCount, s.OmittedCount)
			fmt.Fprintf(cmd.ErrOrStderr(), "  Document errors: %d\n", s.ErrorCount)

			return nil
		},
	}

	cmd.Flags().StringVarP(&solutionPath, "solution", "s", ".", "Solution file, project file, or directory")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory path (default: stdout)")
	cmd.Flags().StringSliceVarP(&formats, "format", "f", nil, "Output formats (text, json, markdown, sarif, table)")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 10*time.Minute, "Analysis timeout")
	cmd.Flags().DurationVar(&documentTimeout, "document-timeout", 0, "Statement walk timeout per document (0 disables)")
	cmd.Flags().BoolVarP(&progress, "progress", "p", false, "Show a progress bar on stderr")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "Abort on the first detector failure")

	return cmd
}
