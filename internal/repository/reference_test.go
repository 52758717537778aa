package repository

import (
	"testing"
	"time"
)

func TestSubstitutesFor(t *testing.T) {
	tests := []struct {
		item string
		want []string
	}{
		{"milk", []string{"almond milk", "oat milk", "soy milk"}},
		{"  Milk ", []string{"almond milk", "oat milk", "soy milk"}},
		{"white bread", []string{"tortillas", "rice cakes", "lettuce wraps"}},
		{"plutonium", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := SubstitutesFor(tt.item)
		if len(got) != len(tt.want) {
			t.Errorf("SubstitutesFor(%q) = %v, want %v", tt.item, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("SubstitutesFor(%q)[%d] = %q, want %q", tt.item, i, got[i], tt.want[i])
			}
		}
	}
}

func TestSubstitutesForMultiKeyMatchIsDeterministic(t *testing.T) {
	// "rice milk" contains both the "milk" and "rice" keys; the sorted key
	// walk must resolve it the same way on every call.
	first := SubstitutesFor("rice milk")
	if len(first) == 0 {
		t.Fatal("SubstitutesFor(rice milk) returned nothing")
	}
	if first[0] != "almond milk" {
		t.Errorf("first match = %v, want the milk substitutes (milk sorts before rice)", first)
	}
	for i := 0; i < 20; i++ {
		again := SubstitutesFor("rice milk")
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("call %d returned %v, earlier call returned %v", i, again, first)
			}
		}
	}
}

func TestSeasonalItems(t *testing.T) {
	sept := SeasonalItems(int(time.September) - 1)
	if len(sept) != 3 || sept[0] != "apples" {
		t.Errorf("SeasonalItems(September) = %v, want apples first", sept)
	}

	for _, idx := range []int{-1, 12} {
		if got := SeasonalItems(idx); got != nil {
			t.Errorf("SeasonalItems(%d) = %v, want nil", idx, got)
		}
	}
}

func TestGenericCategoryItems(t *testing.T) {
	for _, label := range []string{"staples", "household", "essentials"} {
		if items := GenericCategoryItems(label); len(items) == 0 {
			t.Errorf("GenericCategoryItems(%q) is empty", label)
		}
	}
	if items := GenericCategoryItems("nonsense"); items != nil {
		t.Errorf("GenericCategoryItems(nonsense) = %v, want nil", items)
	}
}
