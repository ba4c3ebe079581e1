// Package cmd - analyze command
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"accounting-formulas/adapters/scenario"
	"accounting-formulas/core/output"
	"accounting-formulas/internal/config"
	"accounting-formulas/internal/logging"
)

var (
	outputFormat  string
	showBreakdown bool
)

// analyzeCmd reports on a scenario file
var analyzeCmd = &cobra.Command{
	Use:   "analyze <scenario.hcl>",
	Short: "Report the cost figures of a scenario file",
	Long: `Load cost objects from an HCL scenario file and report their totals,
breakdowns, contribution margins and break-even volumes.

Examples:
  accounting analyze ./klear.hcl
  accounting analyze --format json ./products.hcl
  accounting analyze --breakdown=false ./products.hcl`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (text, json); default from config")
	analyzeCmd.Flags().BoolVarP(&showBreakdown, "breakdown", "b", true, "show variable/fixed and direct/indirect breakdowns")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	format := output.Format(cfg.Output.DefaultFormat)
	if outputFormat != "" {
		format = output.Format(outputFormat)
	}
	opts := output.Options{ShowBreakdown: cfg.Output.ShowBreakdown}
	if cmd.Flags().Changed("breakdown") {
		opts.ShowBreakdown = showBreakdown
	}

	formatter, err := output.NewFormatter(format, opts)
	if err != nil {
		return err
	}

	logging.Info("Loading scenario", zap.String("path", args[0]))
	s, err := scenario.NewLoader().LoadFile(args[0])
	if err != nil {
		return err
	}

	return formatter.Render(cmd.OutOrStdout(), output.BuildAnalysisReport(s.Name, s.Analysis))
}
