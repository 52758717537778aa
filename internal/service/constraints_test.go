package service

import (
	"testing"

	"cartsense/internal/model"
)

func floatPtr(v float64) *float64 { return &v }

func strPtr(s string) *string { return &s }

func TestResolveFilters(t *testing.T) {
	tests := []struct {
		name      string
		extracted *model.Filters
		det       *model.PriceConstraint
		wantMin   *float64
		wantMax   *float64
		wantBrand *string
	}{
		{
			name:      "deterministic max overrides extractor max",
			extracted: &model.Filters{MaxPrice: floatPtr(10), Brand: strPtr("dentafresh")},
			det:       &model.PriceConstraint{Op: model.PriceLessThan, Value: 4},
			wantMax:   floatPtr(4),
			wantBrand: strPtr("dentafresh"),
		},
		{
			name:      "deterministic min overrides extractor min",
			extracted: &model.Filters{MinPrice: floatPtr(1)},
			det:       &model.PriceConstraint{Op: model.PriceGreaterThan, Value: 5},
			wantMin:   floatPtr(5),
		},
		{
			name:      "equality sets both bounds",
			extracted: &model.Filters{MinPrice: floatPtr(1), MaxPrice: floatPtr(10)},
			det:       &model.PriceConstraint{Op: model.PriceEqual, Value: 2.49},
			wantMin:   floatPtr(2.49),
			wantMax:   floatPtr(2.49),
		},
		{
			name:      "no deterministic constraint keeps extractor bounds",
			extracted: &model.Filters{MaxPrice: floatPtr(3)},
			det:       nil,
			wantMax:   floatPtr(3),
		},
		{
			name:    "nil extractor filters with deterministic constraint",
			det:     &model.PriceConstraint{Op: model.PriceLessThan, Value: 4},
			wantMax: floatPtr(4),
		},
		{
			name: "both nil yields empty filter set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveFilters(tt.extracted, tt.det)
			if got == nil {
				t.Fatal("ResolveFilters returned nil")
			}
			checkFloat(t, "MinPrice", got.MinPrice, tt.wantMin)
			checkFloat(t, "MaxPrice", got.MaxPrice, tt.wantMax)
			if (got.Brand == nil) != (tt.wantBrand == nil) {
				t.Errorf("Brand = %v, want %v", got.Brand, tt.wantBrand)
			} else if got.Brand != nil && *got.Brand != *tt.wantBrand {
				t.Errorf("Brand = %q, want %q", *got.Brand, *tt.wantBrand)
			}
		})
	}
}

func checkFloat(t *testing.T, field string, got, want *float64) {
	t.Helper()
	if (got == nil) != (want == nil) {
		t.Errorf("%s = %v, want %v", field, got, want)
		return
	}
	if got != nil && *got != *want {
		t.Errorf("%s = %v, want %v", field, *got, *want)
	}
}

func TestResolveFiltersDoesNotMutateInput(t *testing.T) {
	extracted := &model.Filters{MaxPrice: floatPtr(10)}
	ResolveFilters(extracted, &model.PriceConstraint{Op: model.PriceLessThan, Value: 4})
	if *extracted.MaxPrice != 10 {
		t.Errorf("input filters mutated: MaxPrice = %v, want 10", *extracted.MaxPrice)
	}
}
