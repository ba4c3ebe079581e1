// Package scenario loads cost analyses described in HCL files.
//
// A scenario file holds an optional analysis name and any number of
// cost_object blocks, each with its own cost blocks:
//
//	name = "Klear"
//
//	cost_object "Klear Camera" {
//	  units          = 1
//	  price_per_unit = 1000
//
//	  cost {
//	    amount         = 500
//	    type           = "variable"
//	    classification = "direct"
//	  }
//
//	  cost {
//	    percent_of_sales = 10
//	    type             = "variable"
//	    classification   = "indirect"
//	  }
//	}
package scenario

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"go.uber.org/zap"

	"accounting-formulas/core/cost"
	"accounting-formulas/core/types"
	"accounting-formulas/internal/errors"
	"accounting-formulas/internal/logging"
)

var fileSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "name"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "cost_object", LabelNames: []string{"name"}},
	},
}

var costObjectSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "units", Required: true},
		{Name: "price_per_unit", Required: true},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "cost"},
	},
}

var costSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "amount"},
		{Name: "percent_of_sales"},
		{Name: "type", Required: true},
		{Name: "classification", Required: true},
	},
}

// Scenario is a decoded scenario file
type Scenario struct {
	// Name is the analysis label, empty when the file sets none
	Name string

	// File is the path or name the scenario was parsed from
	File string

	// Analysis holds the decoded cost objects
	Analysis *cost.CostAnalysis
}

// Loader parses scenario files
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new scenario loader
func NewLoader() *Loader {
	return &Loader{
		parser: hclparse.NewParser(),
	}
}

// LoadFile reads and parses the scenario at path
func (l *Loader) LoadFile(path string) (*Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "failed to read scenario", err).WithContext("path", path)
	}
	return l.Parse(src, path)
}

// Parse decodes scenario source. filename is used in error positions.
func (l *Loader) Parse(src []byte, filename string) (*Scenario, error) {
	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("invalid scenario syntax", diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, errors.Parsing("invalid scenario structure", diags)
	}

	s := &Scenario{
		File:     filename,
		Analysis: cost.NewCostAnalysis(),
	}

	if attr, ok := content.Attributes["name"]; ok {
		if diags := gohcl.DecodeExpression(attr.Expr, nil, &s.Name); diags.HasErrors() {
			return nil, errors.Parsing("invalid scenario name", diags)
		}
	}

	for _, block := range content.Blocks {
		obj, err := decodeCostObject(block)
		if err != nil {
			return nil, err
		}
		if s.Analysis.AddCostObject(obj) {
			logging.Warn("duplicate cost object in scenario, keeping the last definition",
				zap.String("name", obj.Name),
				zap.String("at", block.DefRange.String()))
		}
	}

	logging.Debug("scenario loaded",
		zap.String("file", filename),
		zap.Int("cost_objects", s.Analysis.Len()))
	return s, nil
}

func decodeCostObject(block *hcl.Block) (*cost.CostObject, error) {
	name := block.Labels[0]

	content, diags := block.Body.Content(costObjectSchema)
	if diags.HasErrors() {
		return nil, errors.Parsing(fmt.Sprintf("invalid cost_object %q", name), diags)
	}

	var units int
	if diags := gohcl.DecodeExpression(content.Attributes["units"].Expr, nil, &units); diags.HasErrors() {
		return nil, errors.Parsing(fmt.Sprintf("invalid units for cost_object %q", name), diags)
	}

	price, err := decodeDecimal(content.Attributes["price_per_unit"])
	if err != nil {
		return nil, errors.Wrapf(errors.TypeParsing, err, "invalid price_per_unit for cost_object %q", name)
	}

	obj := cost.NewCostObject(name, units, price)
	for _, costBlock := range content.Blocks {
		c, err := decodeCost(costBlock, obj)
		if err != nil {
			return nil, errors.Wrapf(errors.TypeParsing, err, "%s: cost in cost_object %q", costBlock.DefRange.String(), name)
		}
		obj.AddCost(c)
	}
	return obj, nil
}

func decodeCost(block *hcl.Block, obj *cost.CostObject) (types.Cost, error) {
	content, diags := block.Body.Content(costSchema)
	if diags.HasErrors() {
		return types.Cost{}, diags
	}

	amountAttr, hasAmount := content.Attributes["amount"]
	percentAttr, hasPercent := content.Attributes["percent_of_sales"]
	if hasAmount == hasPercent {
		return types.Cost{}, errors.Input("exactly one of amount or percent_of_sales must be set")
	}

	var amount decimal.Decimal
	if hasAmount {
		d, err := decodeDecimal(amountAttr)
		if err != nil {
			return types.Cost{}, err
		}
		amount = d
	} else {
		percent, err := decodeDecimal(percentAttr)
		if err != nil {
			return types.Cost{}, err
		}
		amount = cost.SalesPercentageCost(obj.PricePerUnit, obj.Units, percent)
	}

	var costType, classification string
	if diags := gohcl.DecodeExpression(content.Attributes["type"].Expr, nil, &costType); diags.HasErrors() {
		return types.Cost{}, diags
	}
	if diags := gohcl.DecodeExpression(content.Attributes["classification"].Expr, nil, &classification); diags.HasErrors() {
		return types.Cost{}, diags
	}

	return types.NewCost(amount, costType, classification)
}

// decodeDecimal evaluates a numeric attribute without a float round trip
func decodeDecimal(attr *hcl.Attribute) (decimal.Decimal, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return decimal.Zero, diags
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return decimal.Zero, errors.Wrapf(errors.TypeInput, err, "%s: %s must be a number", attr.Range.String(), attr.Name)
	}
	if num.IsNull() || !num.IsKnown() {
		return decimal.Zero, errors.Newf(errors.TypeInput, "%s: %s must be a known number", attr.Range.String(), attr.Name)
	}

	d, err := decimal.NewFromString(num.AsBigFloat().Text('f', -1))
	if err != nil {
		return decimal.Zero, errors.Wrapf(errors.TypeInput, err, "%s: %s is out of range", attr.Range.String(), attr.Name)
	}
	return d, nil
}
