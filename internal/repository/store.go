package repository

import (
	"context"

	"cartsense/internal/model"
)

// ListStore is the shopping list collaborator. Implementations must be safe
// to call from concurrently-executing requests.
type ListStore interface {
	// AddOrIncrement adds a new entry or, if name already exists, adds qty
	// to the existing entry's quantity. An empty category is defaulted via
	// CategoryFor.
	AddOrIncrement(ctx context.Context, name string, qty int, category string) (model.ListItem, error)

	// Remove deletes an entry by name. Returns nil when the entry does not
	// exist; absence is a normal outcome, not an error.
	Remove(ctx context.Context, name string) (*model.ListItem, error)

	// Search returns entries whose name matches by substring containment in
	// either direction.
	Search(ctx context.Context, name string) ([]model.ListItem, error)

	// Snapshot returns a copy of the list, not a live view.
	Snapshot(ctx context.Context) ([]model.ListItem, error)
}

// HistoryStore tracks historical add events across the life of the list.
type HistoryStore interface {
	// RecordAdd notes that name was added to the list.
	RecordAdd(ctx context.Context, name string) error

	// RunningLow returns names with at least two historical add events that
	// are not currently present on the list.
	RunningLow(ctx context.Context) ([]string, error)
}

// Store combines the two collaborators; both implementations here back the
// history with the same storage as the list.
type Store interface {
	ListStore
	HistoryStore
}
