package output

import (
	"github.com/shopspring/decimal"

	"accounting-formulas/core/cost"
)

// ObjectReport contains every figure derived from one cost object
type ObjectReport struct {
	// Name is the cost object name
	Name string `json:"name"`

	// Units is the sales volume
	Units int `json:"units"`

	// PricePerUnit is the selling price
	PricePerUnit decimal.Decimal `json:"price_per_unit"`

	// TotalCost is the sum of all cost lines
	TotalCost decimal.Decimal `json:"total_cost"`

	// Breakdown splits TotalCost by type and by classification
	Breakdown Breakdown `json:"breakdown"`

	// ContributionMarginPerUnit is nil when undefined
	ContributionMarginPerUnit *decimal.Decimal `json:"contribution_margin_per_unit,omitempty"`

	// ContributionMarginRatio is nil when undefined
	ContributionMarginRatio *decimal.Decimal `json:"contribution_margin_ratio,omitempty"`

	// BreakEvenUnits is nil when undefined
	BreakEvenUnits *int64 `json:"break_even_units,omitempty"`

	// Undefined maps a metric name to the reason it could not be computed
	Undefined map[string]string `json:"undefined,omitempty"`
}

// Breakdown holds the two partitions of a total cost
type Breakdown struct {
	Variable decimal.Decimal `json:"variable"`
	Fixed    decimal.Decimal `json:"fixed"`
	Direct   decimal.Decimal `json:"direct"`
	Indirect decimal.Decimal `json:"indirect"`
}

// AnalysisReport contains the per-object reports and the overall totals
type AnalysisReport struct {
	// Name labels the analysis
	Name string `json:"name,omitempty"`

	// Objects are sorted by name
	Objects []*ObjectReport `json:"objects"`

	// TotalCost is the sum over all objects
	TotalCost decimal.Decimal `json:"total_cost"`

	// Breakdown is the element-wise sum of the object breakdowns
	Breakdown Breakdown `json:"breakdown"`
}

// Metric names used as keys of ObjectReport.Undefined
const (
	MetricContributionMarginPerUnit = "contribution_margin_per_unit"
	MetricContributionMarginRatio   = "contribution_margin_ratio"
	MetricBreakEvenUnits            = "break_even_units"
)

// BuildReport evaluates every metric of obj. Metrics outside their domain are
// recorded in Undefined rather than failing the report.
func BuildReport(obj *cost.CostObject) *ObjectReport {
	r := &ObjectReport{
		Name:         obj.Name,
		Units:        obj.Units,
		PricePerUnit: obj.PricePerUnit,
		TotalCost:    obj.TotalCost(),
	}
	r.Breakdown.Variable, r.Breakdown.Fixed = obj.VariableFixedBreakdown()
	r.Breakdown.Direct, r.Breakdown.Indirect = obj.DirectIndirectBreakdown()

	if margin, err := obj.ContributionMarginPerUnit(); err != nil {
		r.markUndefined(MetricContributionMarginPerUnit, err)
	} else {
		r.ContributionMarginPerUnit = &margin
	}

	if ratio, err := obj.ContributionMarginRatio(); err != nil {
		r.markUndefined(MetricContributionMarginRatio, err)
	} else {
		r.ContributionMarginRatio = &ratio
	}

	if units, err := obj.BreakEvenUnits(); err != nil {
		r.markUndefined(MetricBreakEvenUnits, err)
	} else {
		r.BreakEvenUnits = &units
	}

	return r
}

func (r *ObjectReport) markUndefined(metric string, err error) {
	if r.Undefined == nil {
		r.Undefined = make(map[string]string)
	}
	r.Undefined[metric] = err.Error()
}

// BuildAnalysisReport builds a report for every cost object in the analysis
func BuildAnalysisReport(name string, analysis *cost.CostAnalysis) *AnalysisReport {
	r := &AnalysisReport{
		Name:      name,
		Objects:   make([]*ObjectReport, 0, analysis.Len()),
		TotalCost: analysis.TotalCosts(),
	}
	r.Breakdown.Variable, r.Breakdown.Fixed = analysis.OverallVariableFixedBreakdown()
	r.Breakdown.Direct, r.Breakdown.Indirect = analysis.OverallDirectIndirectBreakdown()

	analysis.Each(func(obj *cost.CostObject) {
		r.Objects = append(r.Objects, BuildReport(obj))
	})
	return r
}
