// Package output provides report building and rendering.
// This package produces human and machine-readable outputs.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"

	"accounting-formulas/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatText is human-readable console text
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *AnalysisReport) error
}

// Options control what a formatter includes
type Options struct {
	// ShowBreakdown includes the variable/fixed and direct/indirect splits
	ShowBreakdown bool
}

// NewFormatter returns the formatter for format
func NewFormatter(format Format, opts Options) (Formatter, error) {
	switch format {
	case FormatText:
		return &TextFormatter{opts: opts}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	}
	return nil, errors.Newf(errors.TypeInput, "unknown output format %q, use 'text' or 'json'", format)
}

// TextFormatter renders reports as console text
type TextFormatter struct {
	opts Options
}

// Format returns FormatText
func (f *TextFormatter) Format() Format {
	return FormatText
}

// Render writes every object report followed by the analysis totals
func (f *TextFormatter) Render(w io.Writer, report *AnalysisReport) error {
	ew := &errWriter{w: w}

	if report.Name != "" {
		ew.printf("Analysis: %s\n\n", report.Name)
	}

	for _, obj := range report.Objects {
		ew.printf("%s\n", obj.Name)
		ew.printf("  Units: %d\n", obj.Units)
		ew.printf("  Price per unit: %s\n", Money(obj.PricePerUnit))
		ew.printf("  Total cost: %s\n", Money(obj.TotalCost))
		if f.opts.ShowBreakdown {
			writeBreakdown(ew, "  ", obj.Breakdown)
		}
		if ew.err == nil {
			ew.err = RenderMetrics(w, obj)
		}
		ew.printf("\n")
	}

	if len(report.Objects) > 1 {
		ew.printf("Total cost of all objects: %s\n", Money(report.TotalCost))
		if f.opts.ShowBreakdown {
			writeBreakdown(ew, "", report.Breakdown)
		}
	}
	return ew.err
}

func writeBreakdown(ew *errWriter, indent string, b Breakdown) {
	ew.printf("%sVariable costs: %s\n", indent, Money(b.Variable))
	ew.printf("%sFixed costs: %s\n", indent, Money(b.Fixed))
	ew.printf("%sDirect costs: %s\n", indent, Money(b.Direct))
	ew.printf("%sIndirect costs: %s\n", indent, Money(b.Indirect))
}

// RenderMetrics writes the contribution margin and break-even lines of one
// object in the same wording the chapter exercises use.
func RenderMetrics(w io.Writer, obj *ObjectReport) error {
	ew := &errWriter{w: w}

	if obj.ContributionMarginPerUnit != nil {
		ew.printf("Contribution Margin per unit: %s\n", Money(*obj.ContributionMarginPerUnit))
	}
	if obj.ContributionMarginRatio != nil {
		ew.printf("Contribution Margin Ratio: %s\n", Percent(*obj.ContributionMarginRatio))
	}
	if obj.BreakEvenUnits != nil {
		ew.printf("Break-even point: %d units\n", *obj.BreakEvenUnits)
	}

	metrics := make([]string, 0, len(obj.Undefined))
	for metric := range obj.Undefined {
		metrics = append(metrics, metric)
	}
	sort.Strings(metrics)
	for _, metric := range metrics {
		ew.printf("Undefined %s: %s\n", metric, obj.Undefined[metric])
	}
	return ew.err
}

// JSONFormatter renders reports as indented JSON
type JSONFormatter struct{}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render encodes the report
func (f *JSONFormatter) Render(w io.Writer, report *AnalysisReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// Money formats an amount as dollars with two decimals
func Money(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// Percent formats a ratio as a percentage with two decimals
func Percent(ratio decimal.Decimal) string {
	return ratio.Shift(2).StringFixed(2) + "%"
}

// errWriter keeps the first write error so callers can check once
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
