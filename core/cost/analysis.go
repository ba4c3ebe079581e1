package cost

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"accounting-formulas/core/determinism"
	"accounting-formulas/internal/logging"
)

// CostAnalysis is a collection of cost objects keyed by name.
// Names are unique; adding an object under an existing name replaces the
// earlier one. It is not safe for concurrent mutation.
type CostAnalysis struct {
	objects *determinism.StableMap[string, *CostObject]
}

// NewCostAnalysis creates an empty analysis
func NewCostAnalysis() *CostAnalysis {
	return &CostAnalysis{
		objects: determinism.NewStableMap[string, *CostObject](),
	}
}

// AddCostObject inserts obj under obj.Name and reports whether an object
// with the same name was replaced.
func (a *CostAnalysis) AddCostObject(obj *CostObject) bool {
	replaced := a.objects.Set(obj.Name, obj)
	if replaced {
		logging.Debug("cost object replaced", zap.String("name", obj.Name))
	}
	return replaced
}

// Get returns the cost object stored under name
func (a *CostAnalysis) Get(name string) (*CostObject, bool) {
	return a.objects.Get(name)
}

// Len returns the number of cost objects
func (a *CostAnalysis) Len() int {
	return a.objects.Len()
}

// Names returns the cost object names in sorted order
func (a *CostAnalysis) Names() []string {
	return a.objects.Keys()
}

// Each calls fn for every cost object in name order
func (a *CostAnalysis) Each(fn func(*CostObject)) {
	a.objects.Range(func(_ string, obj *CostObject) bool {
		fn(obj)
		return true
	})
}

// TotalCosts returns the sum of every cost object's total cost
func (a *CostAnalysis) TotalCosts() decimal.Decimal {
	total := decimal.Zero
	a.Each(func(obj *CostObject) {
		total = total.Add(obj.TotalCost())
	})
	return total
}

// OverallVariableFixedBreakdown sums the variable/fixed split of every cost object
func (a *CostAnalysis) OverallVariableFixedBreakdown() (variable, fixed decimal.Decimal) {
	variable, fixed = decimal.Zero, decimal.Zero
	a.Each(func(obj *CostObject) {
		v, f := obj.VariableFixedBreakdown()
		variable = variable.Add(v)
		fixed = fixed.Add(f)
	})
	return variable, fixed
}

// OverallDirectIndirectBreakdown sums the direct/indirect split of every cost object
func (a *CostAnalysis) OverallDirectIndirectBreakdown() (direct, indirect decimal.Decimal) {
	direct, indirect = decimal.Zero, decimal.Zero
	a.Each(func(obj *CostObject) {
		d, i := obj.DirectIndirectBreakdown()
		direct = direct.Add(d)
		indirect = indirect.Add(i)
	})
	return direct, indirect
}
