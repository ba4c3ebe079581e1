// Package types - Cost line types
package types

import (
	"strings"

	"github.com/shopspring/decimal"

	"accounting-formulas/internal/errors"
)

// CostType describes how a cost behaves as unit volume changes
type CostType string

const (
	// CostTypeFixed does not vary with units sold
	CostTypeFixed CostType = "fixed"

	// CostTypeVariable scales with units sold
	CostTypeVariable CostType = "variable"
)

// String returns the string representation
func (t CostType) String() string {
	return string(t)
}

// ParseCostType matches text case-insensitively against the known cost types
func ParseCostType(text string) (CostType, error) {
	switch strings.ToLower(text) {
	case "fixed":
		return CostTypeFixed, nil
	case "variable":
		return CostTypeVariable, nil
	}
	return "", errors.InvalidCostType(text)
}

// CostClassification describes whether a cost traces to a cost object
type CostClassification string

const (
	// ClassificationDirect is traceable to a specific cost object
	ClassificationDirect CostClassification = "direct"

	// ClassificationIndirect is allocated rather than traced
	ClassificationIndirect CostClassification = "indirect"
)

// String returns the string representation
func (c CostClassification) String() string {
	return string(c)
}

// ParseCostClassification matches text case-insensitively against the known classifications
func ParseCostClassification(text string) (CostClassification, error) {
	switch strings.ToLower(text) {
	case "direct":
		return ClassificationDirect, nil
	case "indirect":
		return ClassificationIndirect, nil
	}
	return "", errors.InvalidClassification(text)
}

// Cost is a single immutable cost line
type Cost struct {
	amount         decimal.Decimal
	costType       CostType
	classification CostClassification
}

// NewCost builds a cost line from free-form type and classification text.
// The amount is stored as given; negative amounts are not rejected.
func NewCost(amount decimal.Decimal, costType, classification string) (Cost, error) {
	t, err := ParseCostType(costType)
	if err != nil {
		return Cost{}, err
	}

	c, err := ParseCostClassification(classification)
	if err != nil {
		return Cost{}, err
	}

	return Cost{
		amount:         amount,
		costType:       t,
		classification: c,
	}, nil
}

// Amount returns the cost amount
func (c Cost) Amount() decimal.Decimal {
	return c.amount
}

// Type returns the cost type
func (c Cost) Type() CostType {
	return c.costType
}

// Classification returns the cost classification
func (c Cost) Classification() CostClassification {
	return c.classification
}

// IsVariable reports whether the cost scales with units
func (c Cost) IsVariable() bool {
	return c.costType == CostTypeVariable
}

// IsDirect reports whether the cost is traceable to its cost object
func (c Cost) IsDirect() bool {
	return c.classification == ClassificationDirect
}
