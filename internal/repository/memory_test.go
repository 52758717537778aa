package repository

import (
	"context"
	"testing"
)

func TestMemoryStoreAddOrIncrement(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.AddOrIncrement(ctx, "milk", 2, "")
	if err != nil {
		t.Fatalf("AddOrIncrement: %v", err)
	}
	if first.Quantity != 2 {
		t.Errorf("Quantity = %d, want 2", first.Quantity)
	}
	if first.Category != "dairy" {
		t.Errorf("Category = %q, want dairy", first.Category)
	}

	second, err := store.AddOrIncrement(ctx, "milk", 3, "")
	if err != nil {
		t.Fatalf("AddOrIncrement: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("ID changed on increment: %d -> %d", first.ID, second.ID)
	}
	if second.Quantity != 5 {
		t.Errorf("Quantity = %d, want 5", second.Quantity)
	}

	items, err := store.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want a single merged entry", len(items))
	}
}

func TestMemoryStoreAddDefaults(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	// Zero and negative quantities default to 1; names are normalised.
	item, err := store.AddOrIncrement(ctx, "  Milk ", 0, "")
	if err != nil {
		t.Fatalf("AddOrIncrement: %v", err)
	}
	if item.Name != "milk" {
		t.Errorf("Name = %q, want milk", item.Name)
	}
	if item.Quantity != 1 {
		t.Errorf("Quantity = %d, want 1", item.Quantity)
	}

	// An explicit category wins over the keyword default.
	item, err = store.AddOrIncrement(ctx, "mystery box", 1, "gifts")
	if err != nil {
		t.Fatalf("AddOrIncrement: %v", err)
	}
	if item.Category != "gifts" {
		t.Errorf("Category = %q, want gifts", item.Category)
	}
}

func TestMemoryStoreRemove(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	// Removing from an empty list is not an error.
	removed, err := store.Remove(ctx, "onion")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed != nil {
		t.Errorf("Remove on empty list = %+v, want nil", removed)
	}

	store.AddOrIncrement(ctx, "milk", 1, "")
	store.AddOrIncrement(ctx, "eggs", 1, "")
	store.AddOrIncrement(ctx, "bread", 1, "")

	removed, err = store.Remove(ctx, "eggs")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed == nil || removed.Name != "eggs" {
		t.Fatalf("Remove = %+v, want the eggs entry", removed)
	}

	// Later entries must stay addressable after the index reshuffle.
	item, err := store.AddOrIncrement(ctx, "bread", 2, "")
	if err != nil {
		t.Fatalf("AddOrIncrement: %v", err)
	}
	if item.Quantity != 3 {
		t.Errorf("bread Quantity = %d, want 3", item.Quantity)
	}
}

func TestMemoryStoreSearch(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.AddOrIncrement(ctx, "almond milk", 1, "")
	store.AddOrIncrement(ctx, "bread", 1, "")

	matches, err := store.Search(ctx, "milk")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 1 || matches[0].Name != "almond milk" {
		t.Errorf("Search(milk) = %+v, want almond milk", matches)
	}

	matches, err = store.Search(ctx, "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Search(\"\") = %+v, want none", matches)
	}
}

func TestMemoryStoreRunningLow(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.RecordAdd(ctx, "milk")
	store.RecordAdd(ctx, "milk")
	store.RecordAdd(ctx, "eggs") // only once, below threshold

	low, err := store.RunningLow(ctx)
	if err != nil {
		t.Fatalf("RunningLow: %v", err)
	}
	if len(low) != 1 || low[0] != "milk" {
		t.Fatalf("RunningLow = %v, want [milk]", low)
	}

	// Items currently on the list are excluded.
	store.AddOrIncrement(ctx, "milk", 1, "")
	low, err = store.RunningLow(ctx)
	if err != nil {
		t.Fatalf("RunningLow: %v", err)
	}
	if len(low) != 0 {
		t.Errorf("RunningLow = %v, want none while milk is on the list", low)
	}

	// Removing it puts it back in the running-low set.
	store.Remove(ctx, "milk")
	low, err = store.RunningLow(ctx)
	if err != nil {
		t.Fatalf("RunningLow: %v", err)
	}
	if len(low) != 1 || low[0] != "milk" {
		t.Errorf("RunningLow = %v, want [milk]", low)
	}
}

func TestMemoryStoreSnapshotIsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.AddOrIncrement(ctx, "milk", 1, "")
	snap, _ := store.Snapshot(ctx)
	snap[0].Quantity = 99

	again, _ := store.Snapshot(ctx)
	if again[0].Quantity != 1 {
		t.Errorf("Snapshot leaked internal state: Quantity = %d, want 1", again[0].Quantity)
	}
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"milk", "dairy"},
		{"almond milk", "dairy"},
		{"green apples", "produce"},
		{"whole wheat bread", "bakery"},
		{"toothpaste", "personal care"},
		{"dish soap", "household"},
		{"basmati rice", "pantry"},
		{"ground coffee", "beverages"},
		{"mystery box", "other"},
		{"", "other"},
	}

	for _, tt := range tests {
		if got := CategoryFor(tt.name); got != tt.want {
			t.Errorf("CategoryFor(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
