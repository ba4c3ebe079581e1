package types

import (
	"testing"

	"github.com/shopspring/decimal"

	"accounting-formulas/internal/errors"
)

func TestNewCostAcceptsAnyCase(t *testing.T) {
	tests := []struct {
		name               string
		costType           string
		classification     string
		wantType           CostType
		wantClassification CostClassification
	}{
		{"lower", "variable", "direct", CostTypeVariable, ClassificationDirect},
		{"upper", "FIXED", "INDIRECT", CostTypeFixed, ClassificationIndirect},
		{"mixed", "VaRiAbLe", "InDirect", CostTypeVariable, ClassificationIndirect},
		{"title", "Fixed", "Direct", CostTypeFixed, ClassificationDirect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, err := NewCost(decimal.NewFromInt(100), tt.costType, tt.classification)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !cost.Amount().Equal(decimal.NewFromInt(100)) {
				t.Errorf("expected amount 100, got %s", cost.Amount())
			}
			if cost.Type() != tt.wantType {
				t.Errorf("expected type %s, got %s", tt.wantType, cost.Type())
			}
			if cost.Classification() != tt.wantClassification {
				t.Errorf("expected classification %s, got %s", tt.wantClassification, cost.Classification())
			}
		})
	}
}

func TestNewCostRejectsUnknownText(t *testing.T) {
	tests := []struct {
		name           string
		costType       string
		classification string
		wantType       errors.Type
	}{
		{"unknown type", "invalid", "direct", errors.TypeInvalidCostType},
		{"empty type", "", "direct", errors.TypeInvalidCostType},
		{"padded type", " fixed", "direct", errors.TypeInvalidCostType},
		{"unknown classification", "fixed", "invalid", errors.TypeInvalidClassification},
		{"empty classification", "fixed", "", errors.TypeInvalidClassification},
		{"both invalid reports type first", "mixed", "shared", errors.TypeInvalidCostType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, err := NewCost(decimal.NewFromInt(100), tt.costType, tt.classification)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.IsType(err, tt.wantType) {
				t.Errorf("expected %s, got %v", tt.wantType, err)
			}
			if cost != (Cost{}) {
				t.Errorf("expected zero Cost on failure, got %+v", cost)
			}
		})
	}
}

func TestNewCostKeepsNegativeAmount(t *testing.T) {
	cost, err := NewCost(decimal.RequireFromString("-25.5"), "fixed", "direct")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cost.Amount().Equal(decimal.RequireFromString("-25.5")) {
		t.Errorf("expected -25.5, got %s", cost.Amount())
	}
}

func TestCostPredicates(t *testing.T) {
	cost, err := NewCost(decimal.NewFromInt(1), "variable", "indirect")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cost.IsVariable() {
		t.Error("expected variable")
	}
	if cost.IsDirect() {
		t.Error("expected indirect")
	}
}
