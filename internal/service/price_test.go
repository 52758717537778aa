package service

import (
	"testing"

	"cartsense/internal/model"
)

func TestExtractPriceConstraint(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *model.PriceConstraint
	}{
		{
			name: "under with currency symbol",
			text: "find toothpaste under $4",
			want: &model.PriceConstraint{Op: model.PriceLessThan, Value: 4},
		},
		{
			name: "below with decimals",
			text: "show me shampoo below 3.50",
			want: &model.PriceConstraint{Op: model.PriceLessThan, Value: 3.5},
		},
		{
			name: "less than with unit word",
			text: "anything less than 10 dollars",
			want: &model.PriceConstraint{Op: model.PriceLessThan, Value: 10},
		},
		{
			name: "max shorthand",
			text: "olive oil max 9",
			want: &model.PriceConstraint{Op: model.PriceLessThan, Value: 9},
		},
		{
			name: "maximum long form",
			text: "olive oil maximum 9.50",
			want: &model.PriceConstraint{Op: model.PriceLessThan, Value: 9.5},
		},
		{
			name: "over",
			text: "fancy cheese over $20",
			want: &model.PriceConstraint{Op: model.PriceGreaterThan, Value: 20},
		},
		{
			name: "more than",
			text: "wine more than 15 bucks",
			want: &model.PriceConstraint{Op: model.PriceGreaterThan, Value: 15},
		},
		{
			name: "minimum",
			text: "minimum 2.25",
			want: &model.PriceConstraint{Op: model.PriceGreaterThan, Value: 2.25},
		},
		{
			name: "exactly",
			text: "toothpaste exactly 2.49",
			want: &model.PriceConstraint{Op: model.PriceEqual, Value: 2.49},
		},
		{
			name: "for reads as equality",
			text: "apples for 5",
			want: &model.PriceConstraint{Op: model.PriceEqual, Value: 5},
		},
		{
			name: "less-than family wins over greater-than",
			text: "under 10 but over 5",
			want: &model.PriceConstraint{Op: model.PriceLessThan, Value: 10},
		},
		{
			name: "greater-than family wins over equality",
			text: "more than 5 exactly 7",
			want: &model.PriceConstraint{Op: model.PriceGreaterThan, Value: 5},
		},
		{
			name: "case insensitive",
			text: "Toothpaste UNDER $4",
			want: &model.PriceConstraint{Op: model.PriceLessThan, Value: 4},
		},
		{
			name: "no price cue",
			text: "add milk to my list",
			want: nil,
		},
		{
			name: "cue without a number",
			text: "keep it under control",
			want: nil,
		},
		{
			name: "search-for without a number",
			text: "search for apples",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPriceConstraint(tt.text)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("ExtractPriceConstraint(%q) = %+v, want nil", tt.text, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ExtractPriceConstraint(%q) = nil, want %+v", tt.text, tt.want)
			}
			if got.Op != tt.want.Op || got.Value != tt.want.Value {
				t.Errorf("ExtractPriceConstraint(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}
