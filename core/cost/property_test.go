package cost

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"

	"accounting-formulas/core/types"
	"accounting-formulas/internal/errors"
)

// buildObject pairs amounts (in cents) with type and classification flags.
func buildObject(name string, cents []int64, variable, direct []bool) *CostObject {
	obj := NewCostObject(name, 1, decimal.NewFromInt(1))
	for i, amount := range cents {
		costType, classification := "fixed", "indirect"
		if i < len(variable) && variable[i] {
			costType = "variable"
		}
		if i < len(direct) && direct[i] {
			classification = "direct"
		}
		c, err := types.NewCost(decimal.New(amount, -2), costType, classification)
		if err != nil {
			panic(err)
		}
		obj.AddCost(c)
	}
	return obj
}

func randomCase(word string, mask []bool) string {
	var b strings.Builder
	for i, r := range word {
		if i < len(mask) && mask[i] {
			b.WriteString(strings.ToUpper(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestNewCostCaseInsensitiveProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("any casing of a known word normalizes", prop.ForAll(
		func(cents int64, costType, classification string, typeMask, classMask []bool) bool {
			c, err := types.NewCost(decimal.New(cents, -2), randomCase(costType, typeMask), randomCase(classification, classMask))
			if err != nil {
				return false
			}
			return c.Type() == types.CostType(costType) &&
				c.Classification() == types.CostClassification(classification) &&
				c.Amount().Equal(decimal.New(cents, -2))
		},
		gen.Int64Range(-1_000_000_00, 1_000_000_00),
		gen.OneConstOf("fixed", "variable"),
		gen.OneConstOf("direct", "indirect"),
		gen.SliceOf(gen.Bool()),
		gen.SliceOf(gen.Bool()),
	))

	properties.Property("unknown type text is rejected", prop.ForAll(
		func(text string) bool {
			lower := strings.ToLower(text)
			if lower == "fixed" || lower == "variable" {
				return true
			}
			_, err := types.NewCost(decimal.Zero, text, "direct")
			return errors.IsType(err, errors.TypeInvalidCostType)
		},
		gen.AlphaString(),
	))

	properties.Property("unknown classification text is rejected", prop.ForAll(
		func(text string) bool {
			lower := strings.ToLower(text)
			if lower == "direct" || lower == "indirect" {
				return true
			}
			_, err := types.NewCost(decimal.Zero, "fixed", text)
			return errors.IsType(err, errors.TypeInvalidClassification)
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestBreakdownPartitionProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("both breakdowns partition the total", prop.ForAll(
		func(cents []int64, variable, direct []bool) bool {
			obj := buildObject("P", cents, variable, direct)
			total := obj.TotalCost()

			v, f := obj.VariableFixedBreakdown()
			d, i := obj.DirectIndirectBreakdown()
			return total.Equal(v.Add(f)) && total.Equal(d.Add(i))
		},
		gen.SliceOf(gen.Int64Range(-1_000_000, 1_000_000)),
		gen.SliceOf(gen.Bool()),
		gen.SliceOf(gen.Bool()),
	))

	properties.Property("totals and breakdowns are idempotent", prop.ForAll(
		func(cents []int64, variable, direct []bool) bool {
			obj := buildObject("P", cents, variable, direct)

			v1, f1 := obj.VariableFixedBreakdown()
			v2, f2 := obj.VariableFixedBreakdown()
			d1, i1 := obj.DirectIndirectBreakdown()
			d2, i2 := obj.DirectIndirectBreakdown()
			return obj.TotalCost().Equal(obj.TotalCost()) &&
				v1.Equal(v2) && f1.Equal(f2) && d1.Equal(d2) && i1.Equal(i2)
		},
		gen.SliceOf(gen.Int64Range(-1_000_000, 1_000_000)),
		gen.SliceOf(gen.Bool()),
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}

func TestAnalysisAggregationProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("analysis totals equal the sum over cost objects", prop.ForAll(
		func(first, second []int64, variable, direct []bool) bool {
			a := buildObject("A", first, variable, direct)
			b := buildObject("B", second, direct, variable)

			analysis := NewCostAnalysis()
			analysis.AddCostObject(a)
			analysis.AddCostObject(b)

			if !analysis.TotalCosts().Equal(a.TotalCost().Add(b.TotalCost())) {
				return false
			}

			av, af := a.VariableFixedBreakdown()
			bv, bf := b.VariableFixedBreakdown()
			v, f := analysis.OverallVariableFixedBreakdown()
			if !v.Equal(av.Add(bv)) || !f.Equal(af.Add(bf)) {
				return false
			}

			ad, ai := a.DirectIndirectBreakdown()
			bd, bi := b.DirectIndirectBreakdown()
			d, i := analysis.OverallDirectIndirectBreakdown()
			return d.Equal(ad.Add(bd)) && i.Equal(ai.Add(bi))
		},
		gen.SliceOf(gen.Int64Range(0, 1_000_000)),
		gen.SliceOf(gen.Int64Range(0, 1_000_000)),
		gen.SliceOf(gen.Bool()),
		gen.SliceOf(gen.Bool()),
	))

	properties.Property("insertion order does not change the totals", prop.ForAll(
		func(first, second []int64, variable []bool) bool {
			a := buildObject("A", first, variable, variable)
			b := buildObject("B", second, variable, nil)

			forward := NewCostAnalysis()
			forward.AddCostObject(a)
			forward.AddCostObject(b)

			backward := NewCostAnalysis()
			backward.AddCostObject(b)
			backward.AddCostObject(a)

			fv, ff := forward.OverallVariableFixedBreakdown()
			bv, bf := backward.OverallVariableFixedBreakdown()
			return forward.TotalCosts().Equal(backward.TotalCosts()) && fv.Equal(bv) && ff.Equal(bf)
		},
		gen.SliceOf(gen.Int64Range(0, 1_000_000)),
		gen.SliceOf(gen.Int64Range(0, 1_000_000)),
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}

func TestBreakEvenUnitsCoversFixedCostsProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	// With u units sold at price p incurring variable total v, n units cover
	// fixed costs f exactly when n*(p*u - v) >= f*u.
	properties.Property("break-even volume is the smallest covering volume", prop.ForAll(
		func(units int, price, variable, fixed int64) bool {
			obj := NewCostObject("P", units, decimal.NewFromInt(price))
			obj.AddCost(mustCostNoT(decimal.NewFromInt(variable), "variable", "direct"))
			obj.AddCost(mustCostNoT(decimal.NewFromInt(fixed), "fixed", "indirect"))

			n, err := obj.BreakEvenUnits()
			u := int64(units)
			totalMargin := price*u - variable
			if totalMargin <= 0 {
				return errors.IsType(err, errors.TypeDomain)
			}
			if err != nil {
				return false
			}
			covered := n*totalMargin >= fixed*u
			tight := n == 0 || (n-1)*totalMargin < fixed*u
			return covered && tight
		},
		gen.IntRange(1, 1000),
		gen.Int64Range(1, 10_000),
		gen.Int64Range(0, 10_000_000),
		gen.Int64Range(0, 10_000_000),
	))

	properties.TestingRun(t)
}

func mustCostNoT(amount decimal.Decimal, costType, classification string) types.Cost {
	c, err := types.NewCost(amount, costType, classification)
	if err != nil {
		panic(err)
	}
	return c
}
