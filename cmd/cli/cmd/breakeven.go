// Package cmd - break-even command
package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"accounting-formulas/core/cost"
	"accounting-formulas/core/output"
	"accounting-formulas/internal/errors"
)

var (
	fixedCosts    string
	sellingPrice  string
	variableCosts string
)

// breakEvenCmd evaluates the standalone formulas
var breakEvenCmd = &cobra.Command{
	Use:   "break-even",
	Short: "Compute contribution margin and break-even point from unit figures",
	Long: `Compute the contribution margin per unit and the break-even point from
total fixed costs, the selling price per unit and the variable cost per unit.

Examples:
  accounting break-even --fixed 1000 --price 100 --variable 50`,
	Args: cobra.NoArgs,
	RunE: runBreakEven,
}

func init() {
	breakEvenCmd.Flags().StringVar(&fixedCosts, "fixed", "0", "total fixed costs")
	breakEvenCmd.Flags().StringVar(&sellingPrice, "price", "", "selling price per unit")
	breakEvenCmd.Flags().StringVar(&variableCosts, "variable", "0", "variable cost per unit")
	_ = breakEvenCmd.MarkFlagRequired("price")
}

func runBreakEven(cmd *cobra.Command, args []string) error {
	fixed, err := parseAmount("fixed", fixedCosts)
	if err != nil {
		return err
	}
	price, err := parseAmount("price", sellingPrice)
	if err != nil {
		return err
	}
	variable, err := parseAmount("variable", variableCosts)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Contribution margin: %s\n", output.Money(cost.ContributionMargin(price, variable)))

	point, err := cost.BreakEvenPoint(fixed, price, variable)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Break-even point: %s units\n", point.Round(2).String())
	return nil
}

func parseAmount(flag, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, errors.Wrapf(errors.TypeInput, err, "--%s must be a number", flag)
	}
	return d, nil
}
