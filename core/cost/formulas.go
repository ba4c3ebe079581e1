package cost

import (
	"fmt"

	"github.com/shopspring/decimal"

	"accounting-formulas/internal/errors"
)

var hundred = decimal.NewFromInt(100)

// BreakEvenPoint returns fixedCosts / (sellingPrice - variableCosts), the
// unit volume at which the contribution margin covers fixed costs.
// A non-positive unit margin has no break-even point.
func BreakEvenPoint(fixedCosts, sellingPrice, variableCosts decimal.Decimal) (decimal.Decimal, error) {
	margin := ContributionMargin(sellingPrice, variableCosts)
	if !margin.IsPositive() {
		return decimal.Zero, errors.Domain(
			fmt.Sprintf("selling price %s does not exceed variable cost %s, break-even point is unreachable",
				sellingPrice.String(), variableCosts.String()))
	}
	return fixedCosts.Div(margin), nil
}

// ContributionMargin returns sellingPrice - variableCosts
func ContributionMargin(sellingPrice, variableCosts decimal.Decimal) decimal.Decimal {
	return sellingPrice.Sub(variableCosts)
}

// SalesPercentageCost converts a cost quoted as a percentage of sales dollars
// into the flat amount incurred over units sold at pricePerUnit.
func SalesPercentageCost(pricePerUnit decimal.Decimal, units int, percent decimal.Decimal) decimal.Decimal {
	sales := pricePerUnit.Mul(decimal.NewFromInt(int64(units)))
	return sales.Mul(percent).Div(hundred)
}
