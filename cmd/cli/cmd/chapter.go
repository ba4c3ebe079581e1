// Package cmd - chapter command
package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"accounting-formulas/core/chapters"
	"accounting-formulas/core/output"
	"accounting-formulas/internal/errors"
	"accounting-formulas/internal/logging"
)

// chapterCmd prints the exercises of a chapter with their computed answers
var chapterCmd = &cobra.Command{
	Use:   "chapter <number>",
	Short: "Work the exercises of a textbook chapter",
	Long: `Print every registered exercise of a chapter followed by the figures
computed from it.

Examples:
  accounting chapter 2`,
	Args: cobra.ExactArgs(1),
	RunE: runChapter,
}

func runChapter(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.Input(fmt.Sprintf("chapter must be a number, got %q", args[0]))
	}

	problems, err := chapters.Default().Chapter(n)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Chapter %02d\n", n)
	for _, p := range problems {
		logging.Debug("working problem", zap.String("id", p.ID))
		if err := printProblem(w, p); err != nil {
			return err
		}
	}
	return nil
}

func printProblem(w io.Writer, p *chapters.Problem) error {
	fmt.Fprintf(w, "\nProblem %s\n\n", p.ID)
	fmt.Fprintf(w, "%s. %s\n", p.Title, p.Statement)
	for _, q := range p.Questions {
		fmt.Fprintln(w, q)
	}
	fmt.Fprintln(w)

	obj, err := p.Build()
	if err != nil {
		return errors.Wrapf(errors.TypeInput, err, "problem %s", p.ID)
	}
	return output.RenderMetrics(w, output.BuildReport(obj))
}
