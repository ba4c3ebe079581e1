package chapters

import (
	"github.com/shopspring/decimal"

	"accounting-formulas/core/cost"
	"accounting-formulas/core/types"
)

// Chapter 2: Using Costs in Decision Making

func klearCamera() *Problem {
	return &Problem{
		Chapter: 2,
		ID:      "2-26",
		Title:   "Breakeven analysis",
		Statement: "Klear Camera Company is planning to introduce a new video camera. " +
			"The camera's selling price is projected to be $1,000 per unit. " +
			"Variable manufacturing costs are estimated to be $500 per unit. " +
			"Variable selling costs are 10% of sales dollars. " +
			"The company expects the annual fixed manufacturing costs for the new camera to be $3.5 million.",
		Questions: []string{
			"(a) Compute Klear's contribution margin per unit and contribution margin ratio.",
			"(b) Determine the number of units Klear must sell to break even.",
		},
		Build: buildKlearCamera,
	}
}

func buildKlearCamera() (*cost.CostObject, error) {
	price := decimal.NewFromInt(1000)
	camera := cost.NewCostObject("Klear Camera", 1, price)

	manufacturing, err := types.NewCost(decimal.NewFromInt(500), "variable", "direct")
	if err != nil {
		return nil, err
	}

	// 10% of sales dollars, expressed as a flat amount for one unit
	selling, err := types.NewCost(cost.SalesPercentageCost(price, camera.Units, decimal.NewFromInt(10)), "variable", "indirect")
	if err != nil {
		return nil, err
	}

	fixed, err := types.NewCost(decimal.NewFromInt(3_500_000), "fixed", "indirect")
	if err != nil {
		return nil, err
	}

	camera.AddCost(manufacturing)
	camera.AddCost(selling)
	camera.AddCost(fixed)
	return camera, nil
}
