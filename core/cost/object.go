// Package cost aggregates cost lines into cost objects and analyses and
// derives contribution-margin and break-even figures from them.
//
// All arithmetic is decimal. Formulas that would divide by zero, or that ask
// for a break-even volume when each unit loses money, return a DOMAIN_ERROR
// instead of an infinite or undefined value.
package cost

import (
	"fmt"
	"math"
	"slices"

	"github.com/shopspring/decimal"

	"accounting-formulas/core/types"
	"accounting-formulas/internal/errors"
)

// CostObject is a named product or activity that costs are traced to.
// It is not safe for concurrent mutation.
type CostObject struct {
	// Name identifies the object within an analysis
	Name string

	// Units is the sales volume the variable costs were incurred for
	Units int

	// PricePerUnit is the selling price of one unit
	PricePerUnit decimal.Decimal

	costs []types.Cost
}

// NewCostObject creates a cost object with no costs
func NewCostObject(name string, units int, pricePerUnit decimal.Decimal) *CostObject {
	return &CostObject{
		Name:         name,
		Units:        units,
		PricePerUnit: pricePerUnit,
	}
}

// AddCost appends a cost line. No deduplication is performed.
func (o *CostObject) AddCost(cost types.Cost) {
	o.costs = append(o.costs, cost)
}

// Costs returns a copy of the cost lines in insertion order
func (o *CostObject) Costs() []types.Cost {
	return slices.Clone(o.costs)
}

// TotalCost returns the sum of all cost amounts
func (o *CostObject) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, c := range o.costs {
		total = total.Add(c.Amount())
	}
	return total
}

// VariableFixedBreakdown partitions the total by cost type
func (o *CostObject) VariableFixedBreakdown() (variable, fixed decimal.Decimal) {
	variable, fixed = decimal.Zero, decimal.Zero
	for _, c := range o.costs {
		if c.IsVariable() {
			variable = variable.Add(c.Amount())
		} else {
			fixed = fixed.Add(c.Amount())
		}
	}
	return variable, fixed
}

// DirectIndirectBreakdown partitions the total by classification
func (o *CostObject) DirectIndirectBreakdown() (direct, indirect decimal.Decimal) {
	direct, indirect = decimal.Zero, decimal.Zero
	for _, c := range o.costs {
		if c.IsDirect() {
			direct = direct.Add(c.Amount())
		} else {
			indirect = indirect.Add(c.Amount())
		}
	}
	return direct, indirect
}

// ContributionMarginPerUnit returns price per unit minus variable cost per unit.
// Every variable cost is treated as incurred across Units; a cost quoted as a
// share of sales must first be converted with SalesPercentageCost.
func (o *CostObject) ContributionMarginPerUnit() (decimal.Decimal, error) {
	if o.Units <= 0 {
		return decimal.Zero, errors.Domain(
			fmt.Sprintf("cost object %q has %d units, contribution margin per unit needs a positive unit count", o.Name, o.Units)).
			WithContext("units", o.Units)
	}

	variable, _ := o.VariableFixedBreakdown()
	perUnit := variable.Div(decimal.NewFromInt(int64(o.Units)))
	return o.PricePerUnit.Sub(perUnit), nil
}

// ContributionMarginRatio returns the per-unit contribution margin as a share of price
func (o *CostObject) ContributionMarginRatio() (decimal.Decimal, error) {
	margin, err := o.ContributionMarginPerUnit()
	if err != nil {
		return decimal.Zero, err
	}
	if o.PricePerUnit.IsZero() {
		return decimal.Zero, errors.Domain(
			fmt.Sprintf("cost object %q has a zero price per unit, contribution margin ratio is undefined", o.Name))
	}
	return margin.Div(o.PricePerUnit), nil
}

// BreakEvenUnits returns the smallest whole number of units whose total
// contribution margin covers the fixed costs.
//
// The quotient is taken over totals, fixed*units / (price*units - variable),
// so a per-unit variable cost that does not terminate in decimal never
// shifts the result across a unit boundary.
func (o *CostObject) BreakEvenUnits() (int64, error) {
	margin, err := o.ContributionMarginPerUnit()
	if err != nil {
		return 0, err
	}

	units := decimal.NewFromInt(int64(o.Units))
	variable, fixed := o.VariableFixedBreakdown()
	totalMargin := o.PricePerUnit.Mul(units).Sub(variable)
	if !totalMargin.IsPositive() {
		return 0, errors.Domain(
			fmt.Sprintf("cost object %q has a contribution margin per unit of %s, break-even volume is unreachable", o.Name, margin.String())).
			WithContext("contribution_margin_per_unit", margin.String())
	}

	q, r := fixed.Mul(units).QuoRem(totalMargin, 0)
	if r.IsPositive() {
		q = q.Add(decimal.NewFromInt(1))
	}
	if q.GreaterThan(maxUnits) || q.LessThan(minUnits) {
		return 0, errors.Domain(
			fmt.Sprintf("cost object %q needs %s units to break even, more than can be counted", o.Name, q.String())).
			WithContext("break_even_units", q.String())
	}
	return q.IntPart(), nil
}

var (
	maxUnits = decimal.NewFromInt(math.MaxInt64)
	minUnits = decimal.NewFromInt(math.MinInt64)
)
